package types_test

import (
	"errors"
	"testing"

	"github.com/blockberries/cltypes/types"
)

func TestParseAccountHash(t *testing.T) {
	const s = "account-hash-ad7e091267d82c3b9ed1987cb780a005a550e6b3d1ca333b743e2dba70680877"
	h, err := types.ParseAccountHash(s)
	if err != nil {
		t.Fatalf("ParseAccountHash: %v", err)
	}
	if h[0] != 0xAD || h[31] != 0x77 {
		t.Fatalf("unexpected bytes %x", h)
	}
	if h.String() != s {
		t.Fatalf("String() = %s", h)
	}
}

func TestParseContractHash(t *testing.T) {
	const s = "hash-033a6a5f47f9f247e1a3bd1307ea5d94a232ddec05aaa6b91363589e94728381"
	h, err := types.ParseContractHash(s)
	if err != nil {
		t.Fatalf("ParseContractHash: %v", err)
	}
	if h.String() != s {
		t.Fatalf("String() = %s", h)
	}
}

func TestParseHash_Invalid(t *testing.T) {
	cases := []string{
		"",
		"hash-",
		"hash-033a",
		"account-hash-033a6a5f47f9f247e1a3bd1307ea5d94a232ddec05aaa6b91363589e94728381",
		"hash-zz3a6a5f47f9f247e1a3bd1307ea5d94a232ddec05aaa6b91363589e94728381",
		"hash-033a6a5f47f9f247e1a3bd1307ea5d94a232ddec05aaa6b91363589e9472838100",
	}
	for _, s := range cases {
		if _, err := types.ParseContractHash(s); !errors.Is(err, types.ErrInvalidHashFormat) {
			t.Errorf("%q: expected ErrInvalidHashFormat, got %v", s, err)
		}
	}
	if _, err := types.ParseAccountHash("hash-033a6a5f47f9f247e1a3bd1307ea5d94a232ddec05aaa6b91363589e94728381"); !errors.Is(err, types.ErrInvalidHashFormat) {
		t.Errorf("contract form accepted as account hash: %v", err)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	types.MustParseContractHash("nope")
}
