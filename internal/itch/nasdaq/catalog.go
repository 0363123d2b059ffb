package nasdaq

import (
	"errors"

	"main/internal/codec"
)

var (
	ErrUnknownType    = errors.New("nasdaq: message type not in catalog")
	ErrLengthMismatch = errors.New("nasdaq: body length does not match catalog")
)

// field is one wire field of a message body: its column name, wire width,
// and the codec that populates the row slot.
type field struct {
	name  string
	width int
	set   func(*codec.Cursor, *Record)
}

// message is the ordered field layout following the one-byte type tag.
type message struct {
	width  int
	fields []field
}

func layout(fields ...field) message {
	width := 0
	for _, f := range fields {
		width += f.width
	}
	return message{width: width, fields: fields}
}

var (
	attribution                  = field{"attribution", 4, func(c *codec.Cursor, r *Record) { r.Attribution = codec.ASCII(c, 4) }}
	auctionCollarExtension       = field{"auction_collar_extension", 4, func(c *codec.Cursor, r *Record) { r.AuctionCollarExtension = codec.U32(c) }}
	auctionCollarReferencePrice  = field{"auction_collar_reference_price", 4, func(c *codec.Cursor, r *Record) { r.AuctionCollarReferencePrice = codec.U32(c) }}
	authenticity                 = field{"authenticity", 1, func(c *codec.Cursor, r *Record) { r.Authenticity = codec.Char(c) }}
	breachedLevel                = field{"breached_level", 1, func(c *codec.Cursor, r *Record) { r.BreachedLevel = codec.Char(c) }}
	buySellIndicator             = field{"buy_sell_indicator", 1, func(c *codec.Cursor, r *Record) { r.BuySellIndicator = codec.Char(c) }}
	canceledShares               = field{"canceled_shares", 4, func(c *codec.Cursor, r *Record) { r.CanceledShares = codec.U32(c) }}
	crossPrice                   = field{"cross_price", 4, func(c *codec.Cursor, r *Record) { r.CrossPrice = codec.U32(c) }}
	crossShares                  = field{"cross_shares", 8, func(c *codec.Cursor, r *Record) { r.CrossShares = codec.U64(c) }}
	crossType                    = field{"cross_type", 1, func(c *codec.Cursor, r *Record) { r.CrossType = codec.Char(c) }}
	currentReferencePrice        = field{"current_reference_price", 4, func(c *codec.Cursor, r *Record) { r.CurrentReferencePrice = codec.U32(c) }}
	etpFlag                      = field{"etp_flag", 1, func(c *codec.Cursor, r *Record) { r.EtpFlag = codec.Char(c) }}
	etpLeverageFactor            = field{"etp_leverage_factor", 4, func(c *codec.Cursor, r *Record) { r.EtpLeverageFactor = codec.U32(c) }}
	eventCode                    = field{"event_code", 1, func(c *codec.Cursor, r *Record) { r.EventCode = codec.Char(c) }}
	executedShares               = field{"executed_shares", 4, func(c *codec.Cursor, r *Record) { r.ExecutedShares = codec.U32(c) }}
	executionPrice               = field{"execution_price", 4, func(c *codec.Cursor, r *Record) { r.ExecutionPrice = codec.U32(c) }}
	farPrice                     = field{"far_price", 4, func(c *codec.Cursor, r *Record) { r.FarPrice = codec.U32(c) }}
	financialStatusIndicator     = field{"financial_status_indicator", 1, func(c *codec.Cursor, r *Record) { r.FinancialStatusIndicator = codec.Char(c) }}
	imbalanceDirection           = field{"imbalance_direction", 1, func(c *codec.Cursor, r *Record) { r.ImbalanceDirection = codec.Char(c) }}
	imbalanceShares              = field{"imbalance_shares", 8, func(c *codec.Cursor, r *Record) { r.ImbalanceShares = codec.U64(c) }}
	interestFlag                 = field{"interest_flag", 1, func(c *codec.Cursor, r *Record) { r.InterestFlag = codec.Char(c) }}
	inverseIndicator             = field{"inverse_indicator", 1, func(c *codec.Cursor, r *Record) { r.InverseIndicator = codec.Char(c) }}
	ipoFlag                      = field{"ipo_flag", 1, func(c *codec.Cursor, r *Record) { r.IpoFlag = codec.Char(c) }}
	ipoPrice                     = field{"ipo_price", 4, func(c *codec.Cursor, r *Record) { r.IpoPrice = codec.U32(c) }}
	ipoQuotationReleaseQualifier = field{"ipo_quotation_release_qualifier", 1, func(c *codec.Cursor, r *Record) { r.IpoQuotationReleaseQualifier = codec.Char(c) }}
	ipoQuotationReleaseTime      = field{"ipo_quotation_release_time", 4, func(c *codec.Cursor, r *Record) { r.IpoQuotationReleaseTime = codec.U32(c) }}
	issueClassification          = field{"issue_classification", 1, func(c *codec.Cursor, r *Record) { r.IssueClassification = codec.Char(c) }}
	issueSubType                 = field{"issue_sub_type", 2, func(c *codec.Cursor, r *Record) { r.IssueSubType = codec.ASCII(c, 2) }}
	level1                       = field{"level_1", 8, func(c *codec.Cursor, r *Record) { r.Level1 = codec.U64(c) }}
	level2                       = field{"level_2", 8, func(c *codec.Cursor, r *Record) { r.Level2 = codec.U64(c) }}
	level3                       = field{"level_3", 8, func(c *codec.Cursor, r *Record) { r.Level3 = codec.U64(c) }}
	locateCode                   = field{"locate_code", 2, func(c *codec.Cursor, r *Record) { r.LocateCode = codec.U16(c) }}
	lowerAuctionCollarPrice      = field{"lower_auction_collar_price", 4, func(c *codec.Cursor, r *Record) { r.LowerAuctionCollarPrice = codec.U32(c) }}
	luldReferencePriceTier       = field{"luld_reference_price_tier", 1, func(c *codec.Cursor, r *Record) { r.LuldReferencePriceTier = codec.Char(c) }}
	marketCategory               = field{"market_category", 1, func(c *codec.Cursor, r *Record) { r.MarketCategory = codec.Char(c) }}
	marketMakerMode              = field{"market_maker_mode", 1, func(c *codec.Cursor, r *Record) { r.MarketMakerMode = codec.Char(c) }}
	marketParticipantState       = field{"market_participant_state", 1, func(c *codec.Cursor, r *Record) { r.MarketParticipantState = codec.Char(c) }}
	matchNumber                  = field{"match_number", 8, func(c *codec.Cursor, r *Record) { r.MatchNumber = codec.U64(c) }}
	mpid                         = field{"mpid", 4, func(c *codec.Cursor, r *Record) { r.Mpid = codec.ASCII(c, 4) }}
	nearPrice                    = field{"near_price", 4, func(c *codec.Cursor, r *Record) { r.NearPrice = codec.U32(c) }}
	newOrderReferenceNumber      = field{"new_order_reference_number", 8, func(c *codec.Cursor, r *Record) { r.NewOrderReferenceNumber = codec.U64(c) }}
	orderReferenceNumber         = field{"order_reference_number", 8, func(c *codec.Cursor, r *Record) { r.OrderReferenceNumber = codec.U64(c) }}
	originalOrderReferenceNumber = field{"original_order_reference_number", 8, func(c *codec.Cursor, r *Record) { r.OriginalOrderReferenceNumber = codec.U64(c) }}
	pairedShares                 = field{"paired_shares", 8, func(c *codec.Cursor, r *Record) { r.PairedShares = codec.U64(c) }}
	price                        = field{"price", 4, func(c *codec.Cursor, r *Record) { r.Price = codec.U32(c) }}
	priceVariationIndicator      = field{"price_variation_indicator", 1, func(c *codec.Cursor, r *Record) { r.PriceVariationIndicator = codec.Char(c) }}
	primaryMarketMaker           = field{"primary_market_maker", 1, func(c *codec.Cursor, r *Record) { r.PrimaryMarketMaker = codec.Char(c) }}
	printable                    = field{"printable", 1, func(c *codec.Cursor, r *Record) { r.Printable = codec.Char(c) }}
	reason                       = field{"reason", 4, func(c *codec.Cursor, r *Record) { r.Reason = codec.ASCII(c, 4) }}
	regShoAction                 = field{"reg_sho_action", 1, func(c *codec.Cursor, r *Record) { r.RegShoAction = codec.Char(c) }}
	reserved                     = field{"reserved", 1, func(c *codec.Cursor, r *Record) { r.Reserved = codec.Char(c) }}
	roundLotSize                 = field{"round_lot_size", 4, func(c *codec.Cursor, r *Record) { r.RoundLotSize = codec.U32(c) }}
	roundLotsOnly                = field{"round_lots_only", 1, func(c *codec.Cursor, r *Record) { r.RoundLotsOnly = codec.Char(c) }}
	shares                       = field{"shares", 4, func(c *codec.Cursor, r *Record) { r.Shares = codec.U32(c) }}
	shortSaleThresholdIndicator  = field{"short_sale_threshold_indicator", 1, func(c *codec.Cursor, r *Record) { r.ShortSaleThresholdIndicator = codec.Char(c) }}
	stock                        = field{"stock", 8, func(c *codec.Cursor, r *Record) { r.Stock = codec.ASCII(c, 8) }}
	stockLocate                  = field{"stock_locate", 2, func(c *codec.Cursor, r *Record) { r.StockLocate = codec.U16(c) }}
	timestamp                    = field{"timestamp", 6, func(c *codec.Cursor, r *Record) { r.Timestamp = codec.U48(c) }}
	trackingNumber               = field{"tracking_number", 2, func(c *codec.Cursor, r *Record) { r.TrackingNumber = codec.U16(c) }}
	tradingState                 = field{"trading_state", 1, func(c *codec.Cursor, r *Record) { r.TradingState = codec.Char(c) }}
	upperAuctionCollarPrice      = field{"upper_auction_collar_price", 4, func(c *codec.Cursor, r *Record) { r.UpperAuctionCollarPrice = codec.U32(c) }}
)

// catalog maps the one-byte message type to the wire layout that follows it,
// per the TotalView-ITCH 5.0 specification.
var catalog = map[byte]message{
	'S': layout(stockLocate, trackingNumber, timestamp, eventCode),
	'R': layout(stockLocate, trackingNumber, timestamp, stock, marketCategory,
		financialStatusIndicator, roundLotSize, roundLotsOnly, issueClassification,
		issueSubType, authenticity, shortSaleThresholdIndicator, ipoFlag,
		luldReferencePriceTier, etpFlag, etpLeverageFactor, inverseIndicator),
	'H': layout(stockLocate, trackingNumber, timestamp, stock, tradingState, reserved, reason),
	'Y': layout(locateCode, trackingNumber, timestamp, stock, regShoAction),
	'L': layout(stockLocate, trackingNumber, timestamp, mpid, stock,
		primaryMarketMaker, marketMakerMode, marketParticipantState),
	'V': layout(stockLocate, trackingNumber, timestamp, level1, level2, level3),
	'W': layout(stockLocate, trackingNumber, timestamp, breachedLevel),
	'K': layout(stockLocate, trackingNumber, timestamp, stock,
		ipoQuotationReleaseTime, ipoQuotationReleaseQualifier, ipoPrice),
	'A': layout(stockLocate, trackingNumber, timestamp, orderReferenceNumber,
		buySellIndicator, shares, stock, price),
	'J': layout(stockLocate, trackingNumber, timestamp, stock,
		auctionCollarReferencePrice, upperAuctionCollarPrice,
		lowerAuctionCollarPrice, auctionCollarExtension),
	'F': layout(stockLocate, trackingNumber, timestamp, orderReferenceNumber,
		buySellIndicator, shares, stock, price, attribution),
	'E': layout(stockLocate, trackingNumber, timestamp, orderReferenceNumber,
		executedShares, matchNumber),
	'C': layout(stockLocate, trackingNumber, timestamp, orderReferenceNumber,
		executedShares, matchNumber, printable, executionPrice),
	'X': layout(stockLocate, trackingNumber, timestamp, orderReferenceNumber, canceledShares),
	'D': layout(stockLocate, trackingNumber, timestamp, orderReferenceNumber),
	'U': layout(stockLocate, trackingNumber, timestamp, originalOrderReferenceNumber,
		newOrderReferenceNumber, shares, price),
	'P': layout(stockLocate, trackingNumber, timestamp, orderReferenceNumber,
		buySellIndicator, shares, stock, price, matchNumber),
	'Q': layout(stockLocate, trackingNumber, timestamp, crossShares, stock,
		crossPrice, matchNumber, crossType),
	'B': layout(stockLocate, trackingNumber, timestamp, matchNumber),
	'I': layout(stockLocate, trackingNumber, timestamp, pairedShares,
		imbalanceShares, imbalanceDirection, stock, farPrice, nearPrice,
		currentReferencePrice, crossType, priceVariationIndicator),
	'N': layout(stockLocate, trackingNumber, timestamp, stock, interestFlag),
}

// Decode drives one message body (the bytes after the type tag) through the
// catalog entry for messageType. The MoldUDP64 block length is authoritative:
// a width disagreement yields ErrLengthMismatch and no fields are populated.
func Decode(messageType byte, body []byte, r *Record) error {
	m, ok := catalog[messageType]
	if !ok {
		return ErrUnknownType
	}
	if m.width != len(body) {
		return ErrLengthMismatch
	}
	cursor := codec.NewCursor(body)
	for i := range m.fields {
		m.fields[i].set(cursor, r)
	}
	return nil
}
