package jnx

import "main/internal/itch"

// Record is one output row: the MoldUDP64 framing columns followed by the
// union of every field any PTS-ITCH 1.6 message carries. Message columns
// are nil unless the row's message type populates them.
type Record struct {
	PcapIndex       uint64 `parquet:"pcap_index"`
	PcapTimestamp   int64  `parquet:"pcap_timestamp,timestamp(microsecond)"`
	Session         string `parquet:"session"`
	MessageSequence uint64 `parquet:"message_sequence"`
	MessageIndex    uint16 `parquet:"message_index"`
	MessageType     uint8  `parquet:"message_type"`

	Attribution          *string `parquet:"attribution,optional"`
	BuySellIndicator     *uint8  `parquet:"buy_sell_indicator,optional"`
	ExecutedQuantity     *uint32 `parquet:"executed_quantity,optional"`
	Group                *string `parquet:"group,optional"`
	LowerPriceLimit      *uint32 `parquet:"lower_price_limit,optional"`
	MatchNumber          *uint64 `parquet:"match_number,optional"`
	NewOrderNumber       *uint64 `parquet:"new_order_number,optional"`
	OrderNumber          *uint64 `parquet:"order_number,optional"`
	OrderType            *uint8  `parquet:"order_type,optional"`
	OrderbookCode        *string `parquet:"orderbook_code,optional"`
	OrderbookID          *uint32 `parquet:"orderbook_id,optional"`
	OriginalOrderNumber  *uint64 `parquet:"original_order_number,optional"`
	Price                *uint32 `parquet:"price,optional"`
	PriceDecimals        *uint32 `parquet:"price_decimals,optional"`
	PriceStart           *uint32 `parquet:"price_start,optional"`
	PriceTickSize        *uint32 `parquet:"price_tick_size,optional"`
	PriceTickSizeTableID *uint32 `parquet:"price_tick_size_table_id,optional"`
	Quantity             *uint32 `parquet:"quantity,optional"`
	RoundLotSize         *uint32 `parquet:"round_lot_size,optional"`
	ShortSellingState    *uint8  `parquet:"short_selling_state,optional"`
	SystemEvent          *uint8  `parquet:"system_event,optional"`
	TimestampNanoseconds *uint32 `parquet:"timestamp_nanoseconds,optional"`
	TimestampSeconds     *uint32 `parquet:"timestamp_seconds,optional"`
	TradingState         *uint8  `parquet:"trading_state,optional"`
	UpperPriceLimit      *uint32 `parquet:"upper_price_limit,optional"`
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
	r.BuySellIndicator = nil
	r.ExecutedQuantity = nil
	r.Group = nil
	r.LowerPriceLimit = nil
	r.MatchNumber = nil
	r.NewOrderNumber = nil
	r.OrderNumber = nil
	r.OrderType = nil
	r.OrderbookCode = nil
	r.OrderbookID = nil
	r.OriginalOrderNumber = nil
	r.Price = nil
	r.PriceDecimals = nil
	r.PriceStart = nil
	r.PriceTickSize = nil
	r.PriceTickSizeTableID = nil
	r.Quantity = nil
	r.RoundLotSize = nil
	r.ShortSellingState = nil
	r.SystemEvent = nil
	r.TimestampNanoseconds = nil
	r.TimestampSeconds = nil
	r.TradingState = nil
	r.UpperPriceLimit = nil
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
	dst = itch.AppendOptChar(dst, r.BuySellIndicator)
	dst = itch.AppendOptUint32(dst, r.ExecutedQuantity)
	dst = itch.AppendOptText(dst, r.Group)
	dst = itch.AppendOptUint32(dst, r.LowerPriceLimit)
	dst = itch.AppendOptUint64(dst, r.MatchNumber)
	dst = itch.AppendOptUint64(dst, r.NewOrderNumber)
	dst = itch.AppendOptUint64(dst, r.OrderNumber)
	dst = itch.AppendOptChar(dst, r.OrderType)
	dst = itch.AppendOptText(dst, r.OrderbookCode)
	dst = itch.AppendOptUint32(dst, r.OrderbookID)
	dst = itch.AppendOptUint64(dst, r.OriginalOrderNumber)
	dst = itch.AppendOptUint32(dst, r.Price)
	dst = itch.AppendOptUint32(dst, r.PriceDecimals)
	dst = itch.AppendOptUint32(dst, r.PriceStart)
	dst = itch.AppendOptUint32(dst, r.PriceTickSize)
	dst = itch.AppendOptUint32(dst, r.PriceTickSizeTableID)
	dst = itch.AppendOptUint32(dst, r.Quantity)
	dst = itch.AppendOptUint32(dst, r.RoundLotSize)
	dst = itch.AppendOptChar(dst, r.ShortSellingState)
	dst = itch.AppendOptChar(dst, r.SystemEvent)
	dst = itch.AppendOptUint32(dst, r.TimestampNanoseconds)
	dst = itch.AppendOptUint32(dst, r.TimestampSeconds)
	dst = itch.AppendOptChar(dst, r.TradingState)
	dst = itch.AppendOptUint32(dst, r.UpperPriceLimit)
	return append(dst, '\n')
}
