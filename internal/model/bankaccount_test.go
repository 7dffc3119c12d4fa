package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskedNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{name: "standard nuban", number: "0690000040", want: "******0040"},
		{name: "short number passes through", number: "1234", want: "1234"},
		{name: "empty", number: "", want: ""},
		{name: "five digits", number: "12345", want: "*2345"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := BankAccount{AccountNumber: tc.number}
			assert.Equal(t, tc.want, a.MaskedNumber())
		})
	}
}
