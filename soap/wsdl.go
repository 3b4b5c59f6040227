package soap

import "fmt"

// WSDL renders the service description with the given endpoint address,
// e.g. "http://localhost:8000/soap".
func WSDL(endpoint string) string {
	return fmt.Sprintf(wsdlTemplate, endpoint)
}

// One string-typed element per parameter, mirroring the operation
// signatures. All four operations return a single string result.
const wsdlTemplate = `<?xml version="1.0" encoding="utf-8"?>
<wsdl:definitions xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
                  xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
                  xmlns:xs="http://www.w3.org/2001/XMLSchema"
                  xmlns:tns="http://registry.shatelmobile.local/soap"
                  targetNamespace="http://registry.shatelmobile.local/soap"
                  name="CustomerRegistry">
  <wsdl:types>
    <xs:schema targetNamespace="http://registry.shatelmobile.local/soap"
               elementFormDefault="qualified">
      <xs:element name="add_customer">
        <xs:complexType>
          <xs:sequence>
            <xs:element name="name" type="xs:string"/>
            <xs:element name="family" type="xs:string"/>
            <xs:element name="father_name" type="xs:string"/>
            <xs:element name="national_id" type="xs:string"/>
            <xs:element name="shenasname_id" type="xs:string"/>
            <xs:element name="birth_date" type="xs:string"/>
            <xs:element name="address" type="xs:string"/>
          </xs:sequence>
        </xs:complexType>
      </xs:element>
      <xs:element name="add_customerResponse">
        <xs:complexType>
          <xs:sequence>
            <xs:element name="add_customerResult" type="xs:string"/>
          </xs:sequence>
        </xs:complexType>
      </xs:element>
      <xs:element name="get_customer">
        <xs:complexType>
          <xs:sequence>
            <xs:element name="customer_id" type="xs:string"/>
          </xs:sequence>
        </xs:complexType>
      </xs:element>
      <xs:element name="get_customerResponse">
        <xs:complexType>
          <xs:sequence>
            <xs:element name="get_customerResult" type="xs:string"/>
          </xs:sequence>
        </xs:complexType>
      </xs:element>
      <xs:element name="create_service">
        <xs:complexType>
          <xs:sequence>
            <xs:element name="customer_id" type="xs:string"/>
            <xs:element name="phone_number" type="xs:string"/>
            <xs:element name="service_name" type="xs:string"/>
          </xs:sequence>
        </xs:complexType>
      </xs:element>
      <xs:element name="create_serviceResponse">
        <xs:complexType>
          <xs:sequence>
            <xs:element name="create_serviceResult" type="xs:string"/>
          </xs:sequence>
        </xs:complexType>
      </xs:element>
      <xs:element name="get_customer_services">
        <xs:complexType>
          <xs:sequence>
            <xs:element name="customer_id" type="xs:string"/>
          </xs:sequence>
        </xs:complexType>
      </xs:element>
      <xs:element name="get_customer_servicesResponse">
        <xs:complexType>
          <xs:sequence>
            <xs:element name="get_customer_servicesResult" type="xs:string"/>
          </xs:sequence>
        </xs:complexType>
      </xs:element>
    </xs:schema>
  </wsdl:types>
  <wsdl:message name="add_customerIn">
    <wsdl:part name="parameters" element="tns:add_customer"/>
  </wsdl:message>
  <wsdl:message name="add_customerOut">
    <wsdl:part name="parameters" element="tns:add_customerResponse"/>
  </wsdl:message>
  <wsdl:message name="get_customerIn">
    <wsdl:part name="parameters" element="tns:get_customer"/>
  </wsdl:message>
  <wsdl:message name="get_customerOut">
    <wsdl:part name="parameters" element="tns:get_customerResponse"/>
  </wsdl:message>
  <wsdl:message name="create_serviceIn">
    <wsdl:part name="parameters" element="tns:create_service"/>
  </wsdl:message>
  <wsdl:message name="create_serviceOut">
    <wsdl:part name="parameters" element="tns:create_serviceResponse"/>
  </wsdl:message>
  <wsdl:message name="get_customer_servicesIn">
    <wsdl:part name="parameters" element="tns:get_customer_services"/>
  </wsdl:message>
  <wsdl:message name="get_customer_servicesOut">
    <wsdl:part name="parameters" element="tns:get_customer_servicesResponse"/>
  </wsdl:message>
  <wsdl:portType name="CustomerRegistryPortType">
    <wsdl:operation name="add_customer">
      <wsdl:input message="tns:add_customerIn"/>
      <wsdl:output message="tns:add_customerOut"/>
    </wsdl:operation>
    <wsdl:operation name="get_customer">
      <wsdl:input message="tns:get_customerIn"/>
      <wsdl:output message="tns:get_customerOut"/>
    </wsdl:operation>
    <wsdl:operation name="create_service">
      <wsdl:input message="tns:create_serviceIn"/>
      <wsdl:output message="tns:create_serviceOut"/>
    </wsdl:operation>
    <wsdl:operation name="get_customer_services">
      <wsdl:input message="tns:get_customer_servicesIn"/>
      <wsdl:output message="tns:get_customer_servicesOut"/>
    </wsdl:operation>
  </wsdl:portType>
  <wsdl:binding name="CustomerRegistryBinding" type="tns:CustomerRegistryPortType">
    <soap:binding transport="http://schemas.xmlsoap.org/soap/http" style="document"/>
    <wsdl:operation name="add_customer">
      <soap:operation soapAction="add_customer"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="get_customer">
      <soap:operation soapAction="get_customer"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="create_service">
      <soap:operation soapAction="create_service"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
    <wsdl:operation name="get_customer_services">
      <soap:operation soapAction="get_customer_services"/>
      <wsdl:input><soap:body use="literal"/></wsdl:input>
      <wsdl:output><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
  </wsdl:binding>
  <wsdl:service name="CustomerRegistry">
    <wsdl:port name="CustomerRegistryPort" binding="tns:CustomerRegistryBinding">
      <soap:address location="%s"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>
`
