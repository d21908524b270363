package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/assert"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterValidations(v)
	return v
}

func TestStellarAddress(t *testing.T) {
	v := newValidator()
	kp := keypair.MustRandom()
	tampered := []byte(kp.Address())
	if tampered[len(tampered)-1] == 'A' {
		tampered[len(tampered)-1] = 'B'
	} else {
		tampered[len(tampered)-1] = 'A'
	}

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"account id", kp.Address(), true},
		{"secret seed", kp.Seed(), false},
		{"bad checksum", string(tampered), false},
		{"lowercase", "gbrpyhil2ci3fnq4bxlfmndlfjunpu2hy3zmfshonuceoasw7qc7ox2h", false},
		{"empty", "", false},
		{"garbage", "not-an-address", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "stellar_address")
			assert.Equal(t, tt.valid, err == nil, "value %q", tt.value)
		})
	}
}

func TestStellarAmount(t *testing.T) {
	v := newValidator()

	tests := []struct {
		value string
		valid bool
	}{
		{"10", true},
		{"0.0000001", true},
		{"1.5", true},
		{"1.123456789", true}, // precision is left to the builder and the network
		{"-1", false},
		{"1e5", false},
		{"1.", false},
		{".5", false},
		{"", false},
		{"ten", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := v.Var(tt.value, "stellar_amount")
			assert.Equal(t, tt.valid, err == nil, "value %q", tt.value)
		})
	}
}

func TestPaymentRequest_Validation(t *testing.T) {
	v := newValidator()
	sender := keypair.MustRandom()

	req := PaymentRequest{
		SenderAddress:   sender.Address(),
		SenderSecret:    sender.Seed(),
		ReceiverAddress: keypair.MustRandom().Address(),
		Amount:          "25",
	}
	assert.NoError(t, v.Struct(req))

	req.ReceiverAddress = "GNOPE"
	assert.Error(t, v.Struct(req))
}

func TestHashURI_Validation(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(HashURI{Hash: "3389e9f0f1a65f19736cacf544c2e825313e8447f569233bb8db39aa607c8889"}))
	assert.Error(t, v.Struct(HashURI{Hash: "abc"}))
	assert.Error(t, v.Struct(HashURI{Hash: "zz89e9f0f1a65f19736cacf544c2e825313e8447f569233bb8db39aa607c8889"}))
}
