//-------------------------------------------------------------------------
//
// FundGen Synthetic Fund Data Generator
//
// Copyright (c) 2025 - 2026, Quantrail Data, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package ident synthesizes format-valid but unregistered identifier codes
// (ISIN, LEI, BIC, prefixed record ids). The functions are pure given a
// Faker; no uniqueness is guaranteed across calls.
package ident

import (
	"fmt"

	"github.com/quantrail/fundgen/internal/datagen"
)

const (
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	upperAlnum   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ISIN generates a synthetic ISIN for the given two-letter country code:
// country prefix, nine alphanumeric characters, and a correctly computed
// check digit, so downstream validators accept it.
func ISIN(f *datagen.Faker, country string) string {
	body := country + f.RandomString(9, upperAlnum)
	return body + fmt.Sprintf("%d", isinCheckDigit(body))
}

// isinCheckDigit computes the ISIN check digit (Luhn over the digitized
// code, letters expanded to two digits).
func isinCheckDigit(body string) int {
	var digits []int
	for _, r := range body {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		default:
			v := int(r-'A') + 10
			digits = append(digits, v/10, v%10)
		}
	}

	sum := 0
	double := true // rightmost digit of the body is doubled
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}

// LEI generates a synthetic 20-character legal entity identifier: a
// four-digit LOU prefix, the reserved "00" pair, twelve alphanumerics, and
// two check digits.
func LEI(f *datagen.Faker) string {
	return f.Digits(4) + "00" + f.RandomString(12, upperAlnum) + f.Digits(2)
}

// BIC generates a synthetic 11-character bank identifier for the given
// two-letter country code.
func BIC(f *datagen.Faker, country string) string {
	return f.RandomString(4, upperLetters) + country + f.RandomString(2, upperAlnum) + "XXX"
}

// Sequential returns a zero-padded sequential record id such as "TA-000042".
func Sequential(prefix string, n, width int) string {
	return fmt.Sprintf("%s-%0*d", prefix, width, n)
}

// Ref generates a random reference code with the given prefix and a
// fixed-width alphanumeric tail, e.g. trade and transaction references.
func Ref(f *datagen.Faker, prefix string, width int) string {
	return prefix + f.RandomString(width, upperAlnum)
}
