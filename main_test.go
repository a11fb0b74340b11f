package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	for _, u := range []string{
		"https://auto.ru/cars/used/sale/toyota/camry/1125000000-abcdef/",
		"http://auto.ru/lcv/new/1",
		"https://m.auto.ru/motorcycle/used/1",
	} {
		require.NoError(t, validateURL(u), u)
	}

	for _, u := range []string{
		"auto.ru/cars/used/1",
		"https://avito.ru/cars/used/1",
		"ftp://auto.ru/cars/used/1",
	} {
		require.Error(t, validateURL(u), u)
	}
}

func TestValidateFlags(t *testing.T) {
	defer func(f string, n int) { outputFormat, maxChallengePasses = f, n }(outputFormat, maxChallengePasses)

	outputFormat, maxChallengePasses = "table", 0
	require.NoError(t, validateFlags())

	outputFormat = "yaml"
	require.EqualError(t, validateFlags(), "invalid output format: yaml")

	outputFormat, maxChallengePasses = "json", -1
	require.Error(t, validateFlags())
}

func TestInferFormatFromExtension(t *testing.T) {
	require.Equal(t, "json", inferFormatFromExtension("ad.JSON"))
	require.Equal(t, "markdown", inferFormatFromExtension("ad.md"))
	require.Equal(t, "csv", inferFormatFromExtension("out/ad.csv"))
	require.Equal(t, "", inferFormatFromExtension("ad"))
}
