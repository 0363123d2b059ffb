package jnx

import (
	"encoding/binary"
	"reflect"
	"sort"
	"strings"
	"testing"
)

// populatedColumns lists the parquet column names of non-nil message slots.
func populatedColumns(r *Record) []string {
	var names []string
	v := reflect.ValueOf(r).Elem()
	rt := v.Type()
	for i := 0; i < rt.NumField(); i++ {
		if rt.Field(i).Type.Kind() != reflect.Ptr {
			continue
		}
		if v.Field(i).IsNil() {
			continue
		}
		tag := rt.Field(i).Tag.Get("parquet")
		names = append(names, strings.SplitN(tag, ",", 2)[0])
	}
	sort.Strings(names)
	return names
}

func catalogColumns(m message) []string {
	names := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		names = append(names, f.name)
	}
	sort.Strings(names)
	return names
}

func TestCatalogPopulatesExactFields(t *testing.T) {
	for messageType, m := range catalog {
		r := new(Record)
		r.Reset()
		if err := Decode(messageType, make([]byte, m.width), r); err != nil {
			t.Fatalf("%c: decode failed: %v", messageType, err)
		}
		got := populatedColumns(r)
		want := catalogColumns(m)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%c: populated %v, want %v", messageType, got, want)
		}
	}
}

func TestDecodeOrderAddedWithAttributes(t *testing.T) {
	var body []byte
	body = binary.BigEndian.AppendUint32(body, 12345)
	body = binary.BigEndian.AppendUint64(body, 777)
	body = append(body, 'S')
	body = binary.BigEndian.AppendUint32(body, 100)
	body = binary.BigEndian.AppendUint32(body, 1301)
	body = append(body, "JPN "...)
	body = binary.BigEndian.AppendUint32(body, 500000)
	body = append(body, "MM01"...)
	body = append(body, 'L')

	r := new(Record)
	r.Reset()
	if err := Decode('F', body, r); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if r.TimestampNanoseconds == nil || *r.TimestampNanoseconds != 12345 {
		t.Fatalf("timestamp_nanoseconds mismatch: %v", r.TimestampNanoseconds)
	}
	if r.OrderNumber == nil || *r.OrderNumber != 777 {
		t.Fatalf("order_number mismatch: %v", r.OrderNumber)
	}
	if r.BuySellIndicator == nil || *r.BuySellIndicator != 'S' {
		t.Fatalf("buy_sell_indicator mismatch: %v", r.BuySellIndicator)
	}
	if r.Quantity == nil || *r.Quantity != 100 {
		t.Fatalf("quantity mismatch: %v", r.Quantity)
	}
	if r.OrderbookID == nil || *r.OrderbookID != 1301 {
		t.Fatalf("orderbook_id mismatch: %v", r.OrderbookID)
	}
	if r.Group == nil || *r.Group != "JPN" {
		t.Fatalf("group mismatch: %v", r.Group)
	}
	if r.Price == nil || *r.Price != 500000 {
		t.Fatalf("price mismatch: %v", r.Price)
	}
	if r.Attribution == nil || *r.Attribution != "MM01" {
		t.Fatalf("attribution mismatch: %v", r.Attribution)
	}
	if r.OrderType == nil || *r.OrderType != 'L' {
		t.Fatalf("order_type mismatch: %v", r.OrderType)
	}
	if got := len(populatedColumns(r)); got != 9 {
		t.Fatalf("order added with attributes must populate exactly 9 columns, got %d", got)
	}
}

func TestDecodeTimestampSeconds(t *testing.T) {
	body := binary.BigEndian.AppendUint32(nil, 34200)
	r := new(Record)
	r.Reset()
	if err := Decode('T', body, r); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if r.TimestampSeconds == nil || *r.TimestampSeconds != 34200 {
		t.Fatalf("timestamp_seconds mismatch: %v", r.TimestampSeconds)
	}
	if got := populatedColumns(r); len(got) != 1 {
		t.Fatalf("timestamp message must populate one column: %v", got)
	}
}

func TestDecodeTradingState(t *testing.T) {
	var body []byte
	body = binary.BigEndian.AppendUint32(body, 999)
	body = binary.BigEndian.AppendUint32(body, 1301)
	body = append(body, "JPN "...)
	body = append(body, 'T')

	r := new(Record)
	r.Reset()
	if err := Decode('H', body, r); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := []string{"group", "orderbook_id", "timestamp_nanoseconds", "trading_state"}
	if got := populatedColumns(r); !reflect.DeepEqual(got, want) {
		t.Fatalf("populated %v, want %v", got, want)
	}
	if *r.TradingState != 'T' {
		t.Fatalf("trading_state mismatch: %c", *r.TradingState)
	}
}

func TestDecodeUnknownType(t *testing.T) {
	r := new(Record)
	r.Reset()
	if err := Decode('Z', make([]byte, 4), r); err != ErrUnknownType {
		t.Fatalf("want ErrUnknownType, got %v", err)
	}
}

func TestDecodeLengthMismatch(t *testing.T) {
	r := new(Record)
	r.Reset()
	if err := Decode('D', make([]byte, 11), r); err != ErrLengthMismatch {
		t.Fatalf("want ErrLengthMismatch, got %v", err)
	}
	if cols := populatedColumns(r); len(cols) != 0 {
		t.Fatalf("length mismatch must populate nothing: %v", cols)
	}
}

func TestCatalogWidths(t *testing.T) {
	// Published PTS-ITCH 1.6 message lengths, including the type tag.
	want := map[byte]int{
		'T': 5, 'S': 10, 'L': 17, 'R': 45, 'H': 14, 'Y': 14,
		'A': 30, 'F': 35, 'E': 25, 'D': 13, 'U': 29,
	}
	if len(want) != len(catalog) {
		t.Fatalf("catalog size mismatch: got %d, want %d", len(catalog), len(want))
	}
	for messageType, length := range want {
		m, ok := catalog[messageType]
		if !ok {
			t.Fatalf("%c missing from catalog", messageType)
		}
		if m.width+1 != length {
			t.Fatalf("%c width mismatch: got %d, want %d", messageType, m.width+1, length)
		}
	}
}
