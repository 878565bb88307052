// Package dnssecsign adapts an external DNSSEC key store/RRSIG generator
// (spec §1's "sign_with_zsk / sign_with_ksk / get_ksk/zsk/ds" collaborator)
// to the hnsresource.Signer contract, wrapping every call in a bounded
// retry since the key store is typically a remote HSM or signing service.
package dnssecsign

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/miekg/dns"

	"github.com/nodarii/hnsresource/hnslog"
)

// KeyStore is the raw external collaborator: it knows how to sign an RRset
// and hand back the zone's key material, but nothing about resource decode
// or DNS response composition.
type KeyStore interface {
	SignZSK(rrset []dns.RR) (*dns.RRSIG, error)
	SignKSK(rrset []dns.RR) (*dns.RRSIG, error)
	ZSK() (*dns.DNSKEY, error)
	KSK() (*dns.DNSKEY, error)
	DS() (*dns.DS, error)
}

// RetryingSigner wraps a KeyStore with bounded retry, satisfying
// hnsresource.Signer. Transient failures talking to a remote signer
// (network hiccup, HSM busy) are retried; a KeyStore that keeps failing
// surfaces its last error to the caller.
type RetryingSigner struct {
	store    KeyStore
	attempts uint
	delay    time.Duration
}

// New wraps store with the given retry budget.
func New(store KeyStore, attempts uint, delay time.Duration) *RetryingSigner {
	return &RetryingSigner{store: store, attempts: attempts, delay: delay}
}

func (s *RetryingSigner) options() []retry.Option {
	return []retry.Option{
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.Context(context.Background()),
		retry.OnRetry(func(n uint, err error) {
			hnslog.PrefixedLog("dnssecsign").Warnf("retrying signing attempt %d: %s", n, err)
		}),
	}
}

func (s *RetryingSigner) SignZSK(rrset []dns.RR) (*dns.RRSIG, error) {
	return retry.DoWithData(func() (*dns.RRSIG, error) { return s.store.SignZSK(rrset) }, s.options()...)
}

func (s *RetryingSigner) SignKSK(rrset []dns.RR) (*dns.RRSIG, error) {
	return retry.DoWithData(func() (*dns.RRSIG, error) { return s.store.SignKSK(rrset) }, s.options()...)
}

func (s *RetryingSigner) ZSK() (*dns.DNSKEY, error) {
	return retry.DoWithData(func() (*dns.DNSKEY, error) { return s.store.ZSK() }, s.options()...)
}

func (s *RetryingSigner) KSK() (*dns.DNSKEY, error) {
	return retry.DoWithData(func() (*dns.DNSKEY, error) { return s.store.KSK() }, s.options()...)
}

func (s *RetryingSigner) DS() (*dns.DS, error) {
	return retry.DoWithData(func() (*dns.DS, error) { return s.store.DS() }, s.options()...)
}

// NoopKeyStore is a placeholder KeyStore for callers that have not wired a
// real DNSSEC key store yet (e.g. the demo CLI): it signs nothing and
// reports an absent DS, letting composition run end to end without keys.
type NoopKeyStore struct{}

func (NoopKeyStore) SignZSK([]dns.RR) (*dns.RRSIG, error) { return &dns.RRSIG{}, nil }
func (NoopKeyStore) SignKSK([]dns.RR) (*dns.RRSIG, error) { return &dns.RRSIG{}, nil }
func (NoopKeyStore) ZSK() (*dns.DNSKEY, error)            { return &dns.DNSKEY{}, nil }
func (NoopKeyStore) KSK() (*dns.DNSKEY, error)            { return &dns.DNSKEY{}, nil }
func (NoopKeyStore) DS() (*dns.DS, error)                 { return nil, errNoDS }

var errNoDS = errors.New("dnssecsign: no DS configured")
