package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/google/gopacket/pcapgo"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/demux"
	"main/internal/itch"
	"main/internal/mold"
	"main/internal/recorder"
)

// Record is the mutable wide row a feed populates once per message.
type Record interface {
	SetFraming(itch.Framing)
	Reset()
}

// DecodeFunc drives one message body (the bytes after the type tag)
// through a feed catalog.
type DecodeFunc[PT any] func(messageType byte, body []byte, rec PT) error

// Config controls one conversion run.
type Config struct {
	PcapFile     string
	ParquetFile  string
	RowGroupSize int
}

// Validate checks if the configuration is usable.
func (c Config) Validate() error {
	if c.PcapFile == "" {
		return fmt.Errorf("invalid convert config: PcapFile is empty")
	}
	if c.ParquetFile == "" {
		return fmt.Errorf("invalid convert config: ParquetFile is empty")
	}
	if c.RowGroupSize < 0 {
		return fmt.Errorf("invalid convert config: RowGroupSize must be >= 0")
	}
	return nil
}

// Convert reads cfg.PcapFile and writes one Parquet row per catalogued ITCH
// message. Records that carry no recognizable UDP/IPv4 payload are skipped;
// the pcap index still advances. Any non-success read from the capture
// source ends processing.
func Convert[T any, PT interface {
	*T
	Record
}](cfg Config, decode DecodeFunc[PT]) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	capture, err := os.Open(cfg.PcapFile)
	if err != nil {
		return errors.Wrap(err, "open capture")
	}
	defer capture.Close()

	source, err := pcapgo.NewReader(capture)
	if err != nil {
		return errors.Wrap(err, "read capture header")
	}

	writer, err := recorder.NewWriter[T](recorder.Config{
		Path:         cfg.ParquetFile,
		RowGroupSize: cfg.RowGroupSize,
	})
	if err != nil {
		return err
	}

	rec := PT(new(T))
	var framing itch.Framing
	for {
		data, info, err := source.ReadPacketData()
		if err != nil {
			if err != io.EOF {
				logs.Warnf("capture read ended early: %v", err)
			}
			break
		}
		framing.PcapIndex++
		framing.PcapTimestamp = info.Timestamp.UnixMicro()

		payload, err := demux.UDPPayload(data)
		if err != nil {
			continue
		}
		header, blocks, err := mold.Parse(payload)
		if err != nil {
			continue
		}
		framing.Session = header.Session

		for index := uint16(1); ; index++ {
			body, err := blocks.Next()
			if err != nil {
				break
			}
			if len(body) == 0 {
				continue
			}
			framing.MessageSequence = header.Sequence + uint64(index) - 1
			framing.MessageIndex = index
			framing.MessageType = body[0]

			rec.Reset()
			rec.SetFraming(framing)
			if err := decode(body[0], body[1:], rec); err != nil {
				continue
			}
			if err := writer.Append(*(*T)(rec)); err != nil {
				_ = writer.Close()
				return err
			}
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}
	logs.Infof("converted %s: %d pcap records, %d rows -> %s",
		cfg.PcapFile, framing.PcapIndex, writer.Rows(), cfg.ParquetFile)
	return nil
}
