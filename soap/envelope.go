// Package soap implements just enough of SOAP 1.1 to serve the registry's
// four operations: envelope decoding, response/fault encoding, and the
// service WSDL.
package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// Namespace is the target namespace of the registry service.
const Namespace = "http://registry.shatelmobile.local/soap"

const envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"

// ContentType is the media type of SOAP 1.1 messages.
const ContentType = "text/xml; charset=utf-8"

// Envelope is an incoming SOAP 1.1 request. The body payload is kept raw so
// the dispatcher can pick the operation before unmarshalling it.
type Envelope struct {
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	Body    Body     `xml:"http://schemas.xmlsoap.org/soap/envelope/ Body"`
}

type Body struct {
	Payload []byte `xml:",innerxml"`
}

// AddCustomerRequest mirrors the add_customer operation element. Element
// matching is by local name, so clients may qualify parameters or not.
type AddCustomerRequest struct {
	XMLName      xml.Name `xml:"add_customer"`
	Name         string   `xml:"name"`
	Family       string   `xml:"family"`
	FatherName   string   `xml:"father_name"`
	NationalID   string   `xml:"national_id"`
	ShenasnameID string   `xml:"shenasname_id"`
	BirthDate    string   `xml:"birth_date"`
	Address      string   `xml:"address"`
}

type GetCustomerRequest struct {
	XMLName    xml.Name `xml:"get_customer"`
	CustomerID string   `xml:"customer_id"`
}

type CreateServiceRequest struct {
	XMLName     xml.Name `xml:"create_service"`
	CustomerID  string   `xml:"customer_id"`
	PhoneNumber string   `xml:"phone_number"`
	ServiceName string   `xml:"service_name"`
}

type GetCustomerServicesRequest struct {
	XMLName    xml.Name `xml:"get_customer_services"`
	CustomerID string   `xml:"customer_id"`
}

// Decode parses a SOAP 1.1 envelope from raw request bytes.
func Decode(data []byte) (*Envelope, error) {
	var env Envelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed envelope: %w", err)
	}
	return &env, nil
}

// Operation returns the local name of the first element in the body, which
// names the requested operation.
func (e *Envelope) Operation() (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(e.Body.Payload))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", fmt.Errorf("empty soap body")
		}
		if err != nil {
			return "", fmt.Errorf("malformed soap body: %w", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se.Name.Local, nil
		}
	}
}

type resultElement struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type operationResponse struct {
	XMLName xml.Name
	Xmlns   string `xml:"xmlns,attr"`
	Result  resultElement
}

// Fault is a SOAP 1.1 fault element.
type Fault struct {
	XMLName     xml.Name `xml:"soap:Fault"`
	Code        string   `xml:"faultcode"`
	FaultString string   `xml:"faultstring"`
}

type responseEnvelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	SoapNS  string   `xml:"xmlns:soap,attr"`
	Body    responseBody
}

type responseBody struct {
	XMLName xml.Name `xml:"soap:Body"`
	Content interface{}
}

func encodeEnvelope(content interface{}) ([]byte, error) {
	env := responseEnvelope{
		SoapNS: envelopeNS,
		Body:   responseBody{Content: content},
	}
	out, err := xml.Marshal(env)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// EncodeResult wraps an operation's string outcome in
// <opResponse><opResult> inside a response envelope.
func EncodeResult(operation, result string) ([]byte, error) {
	return encodeEnvelope(operationResponse{
		XMLName: xml.Name{Local: operation + "Response"},
		Xmlns:   Namespace,
		Result: resultElement{
			XMLName: xml.Name{Local: operation + "Result"},
			Value:   result,
		},
	})
}

// EncodeFault renders a fault envelope. Code is "soap:Client" for caller
// mistakes and "soap:Server" for operation failures.
func EncodeFault(code, message string) ([]byte, error) {
	return encodeEnvelope(Fault{Code: code, FaultString: message})
}
