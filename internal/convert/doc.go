/*
Convert drives a pcap capture of MoldUDP64-framed ITCH traffic into a
Parquet table, one row per catalogued message.

# Module
  - converter: pcap record loop, framing counters, row emission
  - args: CLI argument surface
  - dump: Parquet read-back as CSV lines

# Source
  - Ethernet frames from the capture file via pcapgo

# Produce
  - wide rows through internal/recorder
  - CSV rendering of the written file on stdout
*/
package convert
