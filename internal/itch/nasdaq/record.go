package nasdaq

import "main/internal/itch"

// Record is one output row: the MoldUDP64 framing columns followed by the
// union of every field any TotalView-ITCH 5.0 message carries. Message
// columns are nil unless the row's message type populates them.
type Record struct {
	PcapIndex       uint64 `parquet:"pcap_index"`
	PcapTimestamp   int64  `parquet:"pcap_timestamp,timestamp(microsecond)"`
	Session         string `parquet:"session"`
	MessageSequence uint64 `parquet:"message_sequence"`
	MessageIndex    uint16 `parquet:"message_index"`
	MessageType     uint8  `parquet:"message_type"`

	Attribution                  *string `parquet:"attribution,optional"`
	AuctionCollarExtension       *uint32 `parquet:"auction_collar_extension,optional"`
	AuctionCollarReferencePrice  *uint32 `parquet:"auction_collar_reference_price,optional"`
	Authenticity                 *uint8  `parquet:"authenticity,optional"`
	BreachedLevel                *uint8  `parquet:"breached_level,optional"`
	BuySellIndicator             *uint8  `parquet:"buy_sell_indicator,optional"`
	CanceledShares               *uint32 `parquet:"canceled_shares,optional"`
	CrossPrice                   *uint32 `parquet:"cross_price,optional"`
	CrossShares                  *uint64 `parquet:"cross_shares,optional"`
	CrossType                    *uint8  `parquet:"cross_type,optional"`
	CurrentReferencePrice        *uint32 `parquet:"current_reference_price,optional"`
	EtpFlag                      *uint8  `parquet:"etp_flag,optional"`
	EtpLeverageFactor            *uint32 `parquet:"etp_leverage_factor,optional"`
	EventCode                    *uint8  `parquet:"event_code,optional"`
	ExecutedShares               *uint32 `parquet:"executed_shares,optional"`
	ExecutionPrice               *uint32 `parquet:"execution_price,optional"`
	FarPrice                     *uint32 `parquet:"far_price,optional"`
	FinancialStatusIndicator     *uint8  `parquet:"financial_status_indicator,optional"`
	ImbalanceDirection           *uint8  `parquet:"imbalance_direction,optional"`
	ImbalanceShares              *uint64 `parquet:"imbalance_shares,optional"`
	InterestFlag                 *uint8  `parquet:"interest_flag,optional"`
	InverseIndicator             *uint8  `parquet:"inverse_indicator,optional"`
	IpoFlag                      *uint8  `parquet:"ipo_flag,optional"`
	IpoPrice                     *uint32 `parquet:"ipo_price,optional"`
	IpoQuotationReleaseQualifier *uint8  `parquet:"ipo_quotation_release_qualifier,optional"`
	IpoQuotationReleaseTime      *uint32 `parquet:"ipo_quotation_release_time,optional"`
	IssueClassification          *uint8  `parquet:"issue_classification,optional"`
	IssueSubType                 *string `parquet:"issue_sub_type,optional"`
	Level1                       *uint64 `parquet:"level_1,optional"`
	Level2                       *uint64 `parquet:"level_2,optional"`
	Level3                       *uint64 `parquet:"level_3,optional"`
	LocateCode                   *uint16 `parquet:"locate_code,optional"`
	LowerAuctionCollarPrice      *uint32 `parquet:"lower_auction_collar_price,optional"`
	LuldReferencePriceTier       *uint8  `parquet:"luld_reference_price_tier,optional"`
	MarketCategory               *uint8  `parquet:"market_category,optional"`
	MarketMakerMode              *uint8  `parquet:"market_maker_mode,optional"`
	MarketParticipantState       *uint8  `parquet:"market_participant_state,optional"`
	MatchNumber                  *uint64 `parquet:"match_number,optional"`
	Mpid                         *string `parquet:"mpid,optional"`
	NearPrice                    *uint32 `parquet:"near_price,optional"`
	NewOrderReferenceNumber      *uint64 `parquet:"new_order_reference_number,optional"`
	OrderReferenceNumber         *uint64 `parquet:"order_reference_number,optional"`
	OriginalOrderReferenceNumber *uint64 `parquet:"original_order_reference_number,optional"`
	PairedShares                 *uint64 `parquet:"paired_shares,optional"`
	Price                        *uint32 `parquet:"price,optional"`
	PriceVariationIndicator      *uint8  `parquet:"price_variation_indicator,optional"`
	PrimaryMarketMaker           *uint8  `parquet:"primary_market_maker,optional"`
	Printable                    *uint8  `parquet:"printable,optional"`
	Reason                       *string `parquet:"reason,optional"`
	RegShoAction                 *uint8  `parquet:"reg_sho_action,optional"`
	Reserved                     *uint8  `parquet:"reserved,optional"`
	RoundLotSize                 *uint32 `parquet:"round_lot_size,optional"`
	RoundLotsOnly                *uint8  `parquet:"round_lots_only,optional"`
	Shares                       *uint32 `parquet:"shares,optional"`
	ShortSaleThresholdIndicator  *uint8  `parquet:"short_sale_threshold_indicator,optional"`
	Stock                        *string `parquet:"stock,optional"`
	StockLocate                  *uint16 `parquet:"stock_locate,optional"`
	Timestamp                    *uint64 `parquet:"timestamp,optional"`
	TrackingNumber               *uint16 `parquet:"tracking_number,optional"`
	TradingState                 *uint8  `parquet:"trading_state,optional"`
	UpperAuctionCollarPrice      *uint32 `parquet:"upper_auction_collar_price,optional"`
}

// SetFraming overwrites the required framing columns.
func (r *Record) SetFraming(f itch.Framing) {
	r.PcapIndex = f.PcapIndex
	r.PcapTimestamp = f.PcapTimestamp
	r.Session = f.Session
	r.MessageSequence = f.MessageSequence
	r.MessageIndex = f.MessageIndex
	r.MessageType = f.MessageType
}

// Reset marks every message column absent before the next decode.
func (r *Record) Reset() {
	r.Attribution = nil
	r.AuctionCollarExtension = nil
	r.AuctionCollarReferencePrice = nil
	r.Authenticity = nil
	r.BreachedLevel = nil
	r.BuySellIndicator = nil
	r.CanceledShares = nil
	r.CrossPrice = nil
	r.CrossShares = nil
	r.CrossType = nil
	r.CurrentReferencePrice = nil
	r.EtpFlag = nil
	r.EtpLeverageFactor = nil
	r.EventCode = nil
	r.ExecutedShares = nil
	r.ExecutionPrice = nil
	r.FarPrice = nil
	r.FinancialStatusIndicator = nil
	r.ImbalanceDirection = nil
	r.ImbalanceShares = nil
	r.InterestFlag = nil
	r.InverseIndicator = nil
	r.IpoFlag = nil
	r.IpoPrice = nil
	r.IpoQuotationReleaseQualifier = nil
	r.IpoQuotationReleaseTime = nil
	r.IssueClassification = nil
	r.IssueSubType = nil
	r.Level1 = nil
	r.Level2 = nil
	r.Level3 = nil
	r.LocateCode = nil
	r.LowerAuctionCollarPrice = nil
	r.LuldReferencePriceTier = nil
	r.MarketCategory = nil
	r.MarketMakerMode = nil
	r.MarketParticipantState = nil
	r.MatchNumber = nil
	r.Mpid = nil
	r.NearPrice = nil
	r.NewOrderReferenceNumber = nil
	r.OrderReferenceNumber = nil
	r.OriginalOrderReferenceNumber = nil
	r.PairedShares = nil
	r.Price = nil
	r.PriceVariationIndicator = nil
	r.PrimaryMarketMaker = nil
	r.Printable = nil
	r.Reason = nil
	r.RegShoAction = nil
	r.Reserved = nil
	r.RoundLotSize = nil
	r.RoundLotsOnly = nil
	r.Shares = nil
	r.ShortSaleThresholdIndicator = nil
	r.Stock = nil
	r.StockLocate = nil
	r.Timestamp = nil
	r.TrackingNumber = nil
	r.TradingState = nil
	r.UpperAuctionCollarPrice = nil
}

// AppendCSV renders the row as comma-terminated cells in schema order,
// ending with a newline.
func (r *Record) AppendCSV(dst []byte) []byte {
	dst = itch.AppendUint(dst, r.PcapIndex)
	dst = itch.AppendTimestamp(dst, r.PcapTimestamp)
	dst = itch.AppendText(dst, r.Session)
	dst = itch.AppendUint(dst, r.MessageSequence)
	dst = itch.AppendUint(dst, uint64(r.MessageIndex))
	dst = itch.AppendChar(dst, r.MessageType)
	dst = itch.AppendOptText(dst, r.Attribution)
	dst = itch.AppendOptUint32(dst, r.AuctionCollarExtension)
	dst = itch.AppendOptUint32(dst, r.AuctionCollarReferencePrice)
	dst = itch.AppendOptChar(dst, r.Authenticity)
	dst = itch.AppendOptChar(dst, r.BreachedLevel)
	dst = itch.AppendOptChar(dst, r.BuySellIndicator)
	dst = itch.AppendOptUint32(dst, r.CanceledShares)
	dst = itch.AppendOptUint32(dst, r.CrossPrice)
	dst = itch.AppendOptUint64(dst, r.CrossShares)
	dst = itch.AppendOptChar(dst, r.CrossType)
	dst = itch.AppendOptUint32(dst, r.CurrentReferencePrice)
	dst = itch.AppendOptChar(dst, r.EtpFlag)
	dst = itch.AppendOptUint32(dst, r.EtpLeverageFactor)
	dst = itch.AppendOptChar(dst, r.EventCode)
	dst = itch.AppendOptUint32(dst, r.ExecutedShares)
	dst = itch.AppendOptUint32(dst, r.ExecutionPrice)
	dst = itch.AppendOptUint32(dst, r.FarPrice)
	dst = itch.AppendOptChar(dst, r.FinancialStatusIndicator)
	dst = itch.AppendOptChar(dst, r.ImbalanceDirection)
	dst = itch.AppendOptUint64(dst, r.ImbalanceShares)
	dst = itch.AppendOptChar(dst, r.InterestFlag)
	dst = itch.AppendOptChar(dst, r.InverseIndicator)
	dst = itch.AppendOptChar(dst, r.IpoFlag)
	dst = itch.AppendOptUint32(dst, r.IpoPrice)
	dst = itch.AppendOptChar(dst, r.IpoQuotationReleaseQualifier)
	dst = itch.AppendOptUint32(dst, r.IpoQuotationReleaseTime)
	dst = itch.AppendOptChar(dst, r.IssueClassification)
	dst = itch.AppendOptText(dst, r.IssueSubType)
	dst = itch.AppendOptUint64(dst, r.Level1)
	dst = itch.AppendOptUint64(dst, r.Level2)
	dst = itch.AppendOptUint64(dst, r.Level3)
	dst = itch.AppendOptUint16(dst, r.LocateCode)
	dst = itch.AppendOptUint32(dst, r.LowerAuctionCollarPrice)
	dst = itch.AppendOptChar(dst, r.LuldReferencePriceTier)
	dst = itch.AppendOptChar(dst, r.MarketCategory)
	dst = itch.AppendOptChar(dst, r.MarketMakerMode)
	dst = itch.AppendOptChar(dst, r.MarketParticipantState)
	dst = itch.AppendOptUint64(dst, r.MatchNumber)
	dst = itch.AppendOptText(dst, r.Mpid)
	dst = itch.AppendOptUint32(dst, r.NearPrice)
	dst = itch.AppendOptUint64(dst, r.NewOrderReferenceNumber)
	dst = itch.AppendOptUint64(dst, r.OrderReferenceNumber)
	dst = itch.AppendOptUint64(dst, r.OriginalOrderReferenceNumber)
	dst = itch.AppendOptUint64(dst, r.PairedShares)
	dst = itch.AppendOptUint32(dst, r.Price)
	dst = itch.AppendOptChar(dst, r.PriceVariationIndicator)
	dst = itch.AppendOptChar(dst, r.PrimaryMarketMaker)
	dst = itch.AppendOptChar(dst, r.Printable)
	dst = itch.AppendOptText(dst, r.Reason)
	dst = itch.AppendOptChar(dst, r.RegShoAction)
	dst = itch.AppendOptChar(dst, r.Reserved)
	dst = itch.AppendOptUint32(dst, r.RoundLotSize)
	dst = itch.AppendOptChar(dst, r.RoundLotsOnly)
	dst = itch.AppendOptUint32(dst, r.Shares)
	dst = itch.AppendOptChar(dst, r.ShortSaleThresholdIndicator)
	dst = itch.AppendOptText(dst, r.Stock)
	dst = itch.AppendOptUint16(dst, r.StockLocate)
	dst = itch.AppendOptUint64(dst, r.Timestamp)
	dst = itch.AppendOptUint16(dst, r.TrackingNumber)
	dst = itch.AppendOptChar(dst, r.TradingState)
	dst = itch.AppendOptUint32(dst, r.UpperAuctionCollarPrice)
	return append(dst, '\n')
}
