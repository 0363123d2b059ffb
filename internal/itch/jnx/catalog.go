package jnx

import (
	"errors"

	"main/internal/codec"
)

var (
	ErrUnknownType    = errors.New("jnx: message type not in catalog")
	ErrLengthMismatch = errors.New("jnx: body length does not match catalog")
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
	attribution          = field{"attribution", 4, func(c *codec.Cursor, r *Record) { r.Attribution = codec.ASCII(c, 4) }}
	buySellIndicator     = field{"buy_sell_indicator", 1, func(c *codec.Cursor, r *Record) { r.BuySellIndicator = codec.Char(c) }}
	executedQuantity     = field{"executed_quantity", 4, func(c *codec.Cursor, r *Record) { r.ExecutedQuantity = codec.U32(c) }}
	group                = field{"group", 4, func(c *codec.Cursor, r *Record) { r.Group = codec.ASCII(c, 4) }}
	lowerPriceLimit      = field{"lower_price_limit", 4, func(c *codec.Cursor, r *Record) { r.LowerPriceLimit = codec.U32(c) }}
	matchNumber          = field{"match_number", 8, func(c *codec.Cursor, r *Record) { r.MatchNumber = codec.U64(c) }}
	newOrderNumber       = field{"new_order_number", 8, func(c *codec.Cursor, r *Record) { r.NewOrderNumber = codec.U64(c) }}
	orderNumber          = field{"order_number", 8, func(c *codec.Cursor, r *Record) { r.OrderNumber = codec.U64(c) }}
	orderType            = field{"order_type", 1, func(c *codec.Cursor, r *Record) { r.OrderType = codec.Char(c) }}
	orderbookCode        = field{"orderbook_code", 12, func(c *codec.Cursor, r *Record) { r.OrderbookCode = codec.ASCII(c, 12) }}
	orderbookID          = field{"orderbook_id", 4, func(c *codec.Cursor, r *Record) { r.OrderbookID = codec.U32(c) }}
	originalOrderNumber  = field{"original_order_number", 8, func(c *codec.Cursor, r *Record) { r.OriginalOrderNumber = codec.U64(c) }}
	price                = field{"price", 4, func(c *codec.Cursor, r *Record) { r.Price = codec.U32(c) }}
	priceDecimals        = field{"price_decimals", 4, func(c *codec.Cursor, r *Record) { r.PriceDecimals = codec.U32(c) }}
	priceStart           = field{"price_start", 4, func(c *codec.Cursor, r *Record) { r.PriceStart = codec.U32(c) }}
	priceTickSize        = field{"price_tick_size", 4, func(c *codec.Cursor, r *Record) { r.PriceTickSize = codec.U32(c) }}
	priceTickSizeTableID = field{"price_tick_size_table_id", 4, func(c *codec.Cursor, r *Record) { r.PriceTickSizeTableID = codec.U32(c) }}
	quantity             = field{"quantity", 4, func(c *codec.Cursor, r *Record) { r.Quantity = codec.U32(c) }}
	roundLotSize         = field{"round_lot_size", 4, func(c *codec.Cursor, r *Record) { r.RoundLotSize = codec.U32(c) }}
	shortSellingState    = field{"short_selling_state", 1, func(c *codec.Cursor, r *Record) { r.ShortSellingState = codec.Char(c) }}
	systemEvent          = field{"system_event", 1, func(c *codec.Cursor, r *Record) { r.SystemEvent = codec.Char(c) }}
	timestampNanoseconds = field{"timestamp_nanoseconds", 4, func(c *codec.Cursor, r *Record) { r.TimestampNanoseconds = codec.U32(c) }}
	timestampSeconds     = field{"timestamp_seconds", 4, func(c *codec.Cursor, r *Record) { r.TimestampSeconds = codec.U32(c) }}
	tradingState         = field{"trading_state", 1, func(c *codec.Cursor, r *Record) { r.TradingState = codec.Char(c) }}
	upperPriceLimit      = field{"upper_price_limit", 4, func(c *codec.Cursor, r *Record) { r.UpperPriceLimit = codec.U32(c) }}
)

// catalog maps the one-byte message type to the wire layout that follows it,
// per the PTS-ITCH 1.6 specification.
var catalog = map[byte]message{
	'T': layout(timestampSeconds),
	'S': layout(timestampNanoseconds, group, systemEvent),
	'L': layout(timestampNanoseconds, priceTickSizeTableID, priceTickSize, priceStart),
	'R': layout(timestampNanoseconds, orderbookID, orderbookCode, group,
		roundLotSize, priceTickSizeTableID, priceDecimals, upperPriceLimit,
		lowerPriceLimit),
	'H': layout(timestampNanoseconds, orderbookID, group, tradingState),
	'Y': layout(timestampNanoseconds, orderbookID, group, shortSellingState),
	'A': layout(timestampNanoseconds, orderNumber, buySellIndicator, quantity,
		orderbookID, group, price),
	'F': layout(timestampNanoseconds, orderNumber, buySellIndicator, quantity,
		orderbookID, group, price, attribution, orderType),
	'E': layout(timestampNanoseconds, orderNumber, executedQuantity, matchNumber),
	'D': layout(timestampNanoseconds, orderNumber),
	'U': layout(timestampNanoseconds, originalOrderNumber, newOrderNumber,
		quantity, price),
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
