package document

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rufiscal/fdcodec/fdformat"
)

// registrationReportJSON is a complete JSON field map for DocRegistrationReport
// (tag 1): every schema-Required slot that the registry exposes under a
// JSON name. Tag 1000 (DocName) is deliberately absent — original_source
// marks it Form::PRINTED only, so it never appears in an OFD JSON payload.
func registrationReportJSON() map[string]any {
	return map[string]any{
		"fiscalDocumentFormatVer": 2,
		"user":                    "ООО Ромашка",
		"userInn":                 "7707083893",
		"dateTime":                float64(1800000000),
		"kktRegId":                "0000000000012345",
		"offlineMode":             0,
		"encryptionSign":          0,
		"autoMode":                0,
		"usageConditionSigns":     1,
		"kktNumber":               "12345678901234567890",
		"operator":                "Иванова И.И.",
		"retailPlaceAddress":      "г. Москва, ул. Ленина, д. 1",
		"retailPlace":             "Магазин №1",
		"kktVersion":              "1.0",
		"documentKktVersion":      2,
		"documentFdVersion":       2,
		"fdKeyResource":           36500,
		"fiscalDocumentNumber":    1,
		"fiscalDriveNumber":       "9999078900004312",
		"fiscalSign":              "AQIDBAUG", // base64 of 6 arbitrary bytes
	}
}

func TestFromJSON_RegistrationReport_Succeeds(t *testing.T) {
	doc, err := FromJSON(fdformat.DocRegistrationReport, registrationReportJSON())
	require.NoError(t, err)
	require.Equal(t, fdformat.DocRegistrationReport, doc.Tag)
	require.False(t, doc.Object.Contains(1000), "DocName has no JSON name and is never populated from a JSON payload")
}

func TestFromJSON_MissingJSONRequiredFieldRejected(t *testing.T) {
	fields := registrationReportJSON()
	delete(fields, "userInn")

	_, err := FromJSON(fdformat.DocRegistrationReport, fields)
	require.Error(t, err)
}

func TestDocument_ToJSONFromJSON_RoundTrip(t *testing.T) {
	doc, err := FromJSON(fdformat.DocRegistrationReport, registrationReportJSON())
	require.NoError(t, err)

	fields, err := doc.ToJSON()
	require.NoError(t, err)
	require.Equal(t, int(fdformat.DocRegistrationReport), fields["code"])
	require.Equal(t, "7707083893  ", fields["userInn"])

	wrapped, err := WrapJSON(doc.Tag, fields)
	require.NoError(t, err)

	tag, inner, err := UnwrapJSON(wrapped)
	require.NoError(t, err)
	require.Equal(t, fdformat.DocRegistrationReport, tag)

	back, err := FromJSON(tag, inner)
	require.NoError(t, err)
	got, err := back.ToJSON()
	require.NoError(t, err)
	require.Equal(t, fields, got)
}

func TestDocument_ToJSON_IncludesRawDataAndSign(t *testing.T) {
	doc, err := FromJSON(fdformat.DocRegistrationReport, registrationReportJSON())
	require.NoError(t, err)
	doc.SetMessageFiscalSign(42)

	fields, err := doc.ToJSON()
	require.NoError(t, err)
	require.Contains(t, fields, "rawData")
	require.EqualValues(t, 42, fields["messageFiscalSign"])
}

func TestFromJSON_MessageFiscalSign_FractionalIsDroppedNotTruncated(t *testing.T) {
	fields := registrationReportJSON()
	fields["messageFiscalSign"] = 42.5

	doc, err := FromJSON(fdformat.DocRegistrationReport, fields)
	require.NoError(t, err)
	_, ok := doc.MessageFiscalSign()
	require.False(t, ok, "a fractional messageFiscalSign must be dropped, not truncated")
}

func TestFromJSON_MessageFiscalSign_IntegralFloatAccepted(t *testing.T) {
	fields := registrationReportJSON()
	fields["messageFiscalSign"] = 42.0

	doc, err := FromJSON(fdformat.DocRegistrationReport, fields)
	require.NoError(t, err)
	sign, ok := doc.MessageFiscalSign()
	require.True(t, ok)
	require.EqualValues(t, 42, sign)
}

func TestFromJSON_RawDataIsOptionalAndIgnored(t *testing.T) {
	fields := registrationReportJSON()
	// rawData absent entirely, as it legitimately is in real OFD payloads.
	doc, err := FromJSON(fdformat.DocRegistrationReport, fields)
	require.NoError(t, err)
	require.Equal(t, "7707083893  ", mustJSON(t, doc)["userInn"])
}

func mustJSON(t *testing.T, doc *Document) map[string]any {
	t.Helper()
	m, err := doc.ToJSON()
	require.NoError(t, err)

	return m
}

// TestDocument_ContextualAlias covers spec scenario S5: tag 1213 serializes
// as "fdKeyResource" under document tag 1 but as "keyResource" under tag 21.
func TestDocument_ContextualAlias(t *testing.T) {
	registration := registrationReportJSON()
	require.Contains(t, registration, "fdKeyResource")

	payment := map[string]any{
		"fiscalDocumentFormatVer": 2,
		"user":                    "ООО Ромашка",
		"userInn":                 "7707083893",
		"retailPlaceAddress":      "г. Москва, ул. Ленина, д. 1",
		"retailPlace":             "Магазин №1",
		"dateTime":                float64(1800000000),
		"keyResource":             36500,
		"kktRegId":                "0000000000012345",
		"fiscalDocumentNumber":    1,
		"fiscalDriveNumber":       "9999078900004312",
		"fiscalSign":              "AQIDBAUG",
		"fiscalDriveSumReports": map[string]any{
			"code": int(fdformat.DocPaymentStateReport),
		},
	}

	doc, err := FromJSON(fdformat.DocPaymentStateReport, payment)
	require.NoError(t, err)

	fields, err := doc.ToJSON()
	require.NoError(t, err)
	require.Equal(t, uint64(36500), fields["keyResource"])
	require.NotContains(t, fields, "fdKeyResource")
}
