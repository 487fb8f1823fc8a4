// Package replay provides a trace-driven AXI bus master for testbenches.
// It reads an ordered list of timed read and write transactions, issues
// them over AXI channel ports in file order, and verifies every read
// response against the expected value recorded in the trace.
package replay

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/axisim/axi"
)

// A Transaction is one timed read or write request. Delay is counted in
// cycles from the completion of the previous transaction. For writes, Data
// is the value to write; for reads, it is the expected response value.
type Transaction struct {
	Delay   int
	IsWrite bool
	Addr    uint64
	Data    uint64
}

// ParseTrace reads transactions from CSV records of the form
//
//	delay,op,address_hex,value_hex
//
// with op being R or W. There is no header row; record order defines
// transaction order. Hex fields accept an optional 0x prefix. Addresses and
// values are truncated to the bus widths. Any malformed record is a fatal
// load error identifying the record number.
func ParseTrace(r io.Reader, busConfig axi.Config) ([]Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var transactions []Transaction

	// Counts records, not physical lines; a quoted field can span lines.
	recordNum := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("replay: reading trace: %w", err)
		}

		recordNum++

		if len(record) != 4 {
			return nil, fmt.Errorf(
				"replay: record %d: each request must have four fields, got %d",
				recordNum, len(record))
		}

		trans, err := parseRecord(record, busConfig)
		if err != nil {
			return nil, fmt.Errorf("replay: record %d: %w", recordNum, err)
		}

		transactions = append(transactions, trans)
	}

	return transactions, nil
}

// LoadTrace parses a trace file.
func LoadTrace(path string, busConfig axi.Config) ([]Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: opening trace: %w", err)
	}
	defer f.Close()

	return ParseTrace(f, busConfig)
}

func parseRecord(record []string, busConfig axi.Config) (Transaction, error) {
	var trans Transaction

	delay, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return trans, fmt.Errorf("invalid delay %q", record[0])
	}

	if delay < 0 {
		return trans, fmt.Errorf("delay must be non-negative, got %d", delay)
	}

	trans.Delay = delay

	switch strings.TrimSpace(record[1]) {
	case "R":
		trans.IsWrite = false
	case "W":
		trans.IsWrite = true
	default:
		return trans, fmt.Errorf("request op must be R or W, got %q",
			record[1])
	}

	addr, err := parseHex(record[2])
	if err != nil {
		return trans, fmt.Errorf("invalid address %q", record[2])
	}

	trans.Addr = addr & busConfig.AddrMask()

	data, err := parseHex(record[3])
	if err != nil {
		return trans, fmt.Errorf("invalid value %q", record[3])
	}

	trans.Data = data & busConfig.DataMask()

	return trans, nil
}

func parseHex(field string) (uint64, error) {
	s := strings.TrimSpace(field)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	if s == "" {
		return 0, fmt.Errorf("empty hex field")
	}

	return strconv.ParseUint(s, 16, 64)
}
