package soap

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addCustomerEnvelope = `<?xml version="1.0" encoding="utf-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
  <soapenv:Body>
    <add_customer xmlns="http://registry.shatelmobile.local/soap">
      <name>Ali</name>
      <family>Rezaei</family>
      <father_name>Hossein</father_name>
      <national_id>0012345678</national_id>
      <shenasname_id>4321</shenasname_id>
      <birth_date>1990-05-10</birth_date>
      <address>Tehran, Valiasr St.</address>
    </add_customer>
  </soapenv:Body>
</soapenv:Envelope>`

func TestDecodeAndDispatchFields(t *testing.T) {
	env, err := Decode([]byte(addCustomerEnvelope))
	require.NoError(t, err)

	op, err := env.Operation()
	require.NoError(t, err)
	assert.Equal(t, "add_customer", op)

	var req AddCustomerRequest
	require.NoError(t, xml.Unmarshal(env.Body.Payload, &req))
	assert.Equal(t, "Ali", req.Name)
	assert.Equal(t, "Rezaei", req.Family)
	assert.Equal(t, "Hossein", req.FatherName)
	assert.Equal(t, "0012345678", req.NationalID)
	assert.Equal(t, "4321", req.ShenasnameID)
	assert.Equal(t, "1990-05-10", req.BirthDate)
	assert.Equal(t, "Tehran, Valiasr St.", req.Address)
}

func TestDecodeMalformedEnvelope(t *testing.T) {
	_, err := Decode([]byte("this is not xml"))
	require.Error(t, err)
}

func TestOperationEmptyBody(t *testing.T) {
	env, err := Decode([]byte(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"><soapenv:Body></soapenv:Body></soapenv:Envelope>`))
	require.NoError(t, err)

	_, err = env.Operation()
	require.Error(t, err)
}

func TestEncodeResult(t *testing.T) {
	out, err := EncodeResult("get_customer", "Customer not found.")
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">`)
	assert.Contains(t, s, `<get_customerResponse xmlns="`+Namespace+`">`)
	assert.Contains(t, s, `<get_customerResult>Customer not found.</get_customerResult>`)
}

func TestEncodeResultEscapesValue(t *testing.T) {
	out, err := EncodeResult("get_customer", "a < b & c")
	require.NoError(t, err)
	assert.Contains(t, string(out), "a &lt; b &amp; c")
}

func TestEncodeFault(t *testing.T) {
	out, err := EncodeFault("soap:Client", "unknown operation: nope")
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<soap:Fault>")
	assert.Contains(t, s, "<faultcode>soap:Client</faultcode>")
	assert.Contains(t, s, "<faultstring>unknown operation: nope</faultstring>")
}

func TestWSDLContainsAllOperations(t *testing.T) {
	doc := WSDL("http://localhost:8000/soap")

	for _, op := range []string{"add_customer", "get_customer", "create_service", "get_customer_services"} {
		assert.Contains(t, doc, `<wsdl:operation name="`+op+`">`)
	}
	assert.Contains(t, doc, `<soap:address location="http://localhost:8000/soap"/>`)
}
