package accountid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/near/go-account-id/pkg/accountid"
)

func TestAccountTypeClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  accountid.AccountType
	}{
		{
			name:  "named account",
			input: "alice.near",
			want:  accountid.NamedAccount,
		},
		{
			name:  "named top level",
			input: "near",
			want:  accountid.NamedAccount,
		},
		{
			name:  "near-implicit",
			input: "98793cd91a3f870fb126f66285808c7e094afcfc4eda8a970f6648cdf0dbd6de",
			want:  accountid.NearImplicitAccount,
		},
		{
			name:  "near-implicit all zeros",
			input: "0000000000000000000000000000000000000000000000000000000000000000",
			want:  accountid.NearImplicitAccount,
		},
		{
			name:  "eth-implicit",
			input: "0xb794f5ea0ba39494ce839613fffba74279579268",
			want:  accountid.EthImplicitAccount,
		},
		{
			name:  "near-deterministic",
			input: "0sb794f5ea0ba39494ce839613fffba74279579268",
			want:  accountid.NearDeterministicAccount,
		},
		{
			name:  "63 hex chars is named",
			input: "98793cd91a3f870fb126f66285808c7e094afcfc4eda8a970f6648cdf0dbd6d",
			want:  accountid.NamedAccount,
		},
		{
			name:  "64 chars with non-hex letter is named",
			input: "oooooooooooooooooooooooooooooooooooooooooooooooooooooooooooooooo",
			want:  accountid.NamedAccount,
		},
		{
			name:  "0x with 39 hex chars is named",
			input: "0x000000000000000000000000000000000000000",
			want:  accountid.NamedAccount,
		},
		{
			name:  "0x with non-hex tail is named",
			input: "0xoooooooooooooooooooooooooooooooooooooooo",
			want:  accountid.NamedAccount,
		},
		{
			name:  "42 hex chars without prefix is named",
			input: "04b794f5ea0ba39494ce839613fffba74279579268",
			want:  accountid.NamedAccount,
		},
		{
			name:  "dotted hex is named",
			input: "6.74617461746174617461746174617461746174617461746174617461746174",
			want:  accountid.NamedAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := accountid.MustParse(tt.input)
			got := id.AccountType()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != accountid.NamedAccount, id.IsImplicit())

			// The view classifies identically to the owned value.
			assert.Equal(t, got, id.Ref().AccountType())
		})
	}
}

func TestAccountTypeString(t *testing.T) {
	assert.Equal(t, "named", accountid.NamedAccount.String())
	assert.Equal(t, "near-implicit", accountid.NearImplicitAccount.String())
	assert.Equal(t, "eth-implicit", accountid.EthImplicitAccount.String())
	assert.Equal(t, "near-deterministic", accountid.NearDeterministicAccount.String())
}
