// Command hnsresource decodes a Handshake resource blob and prints the DNS
// message it projects to for a given query, for local debugging of the
// hnsresource library. It is not part of the engine's contract (spec §6:
// "no CLI, no env vars, no persisted state" describes the library itself).
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/miekg/dns"

	"github.com/nodarii/hnsresource/config"
	"github.com/nodarii/hnsresource/dnssecsign"
	"github.com/nodarii/hnsresource/hnslog"
	"github.com/nodarii/hnsresource/hnsresource"
	"github.com/nodarii/hnsresource/metrics"
)

func main() {
	blobHex := flag.String("blob", "", "hex-encoded resource blob")
	queryName := flag.String("name", "example.", "FQDN to compose a response for")
	qtype := flag.String("type", "A", "query type (A, AAAA, NS, MX, TXT, ...)")
	configPath := flag.String("config", "", "optional path to a YAML config file")
	flag.Parse()

	cfg := &config.Config{Log: hnslog.DefaultConfig()}
	if err := defaults.Set(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		cfg = loaded
	}

	hnslog.Configure(cfg.Log)
	metrics.Start(cfg.Metrics)

	blob, err := hex.DecodeString(*blobHex)
	if err != nil {
		hnslog.Log().Fatalf("invalid -blob: %s", err)
	}

	res, err := hnsresource.Decode(blob)
	if err != nil {
		hnslog.Log().Fatalf("decode failed: %s", err)
	}

	rrtype, ok := dns.StringToType[*qtype]
	if !ok {
		hnslog.Log().Fatalf("unknown query type: %s", *qtype)
	}

	msg, err := hnsresource.ToDNS(res, dnssecsign.NoopKeyStore{}, dns.Fqdn(*queryName), rrtype, time.Now())
	if err != nil {
		hnslog.Log().Fatalf("to_dns failed: %s", err)
	}

	fmt.Println(msg.String())
}
