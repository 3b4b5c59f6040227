package routes

import (
	"encoding/xml"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shatel-registry/config"
	"shatel-registry/controllers"
	"shatel-registry/soap"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "SOAPAction"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/soap", serveWSDL)
	r.POST("/soap", handleSOAP)

	return r
}

func serveWSDL(c *gin.Context) {
	if _, ok := c.GetQuery("wsdl"); !ok {
		c.String(http.StatusBadRequest, "append ?wsdl for the service description")
		return
	}
	endpoint := "http://" + c.Request.Host + "/soap"
	c.Data(http.StatusOK, soap.ContentType, []byte(soap.WSDL(endpoint)))
}

// handleSOAP decodes the envelope, dispatches on the operation element and
// wraps the handler's string outcome in a response envelope. Handler errors
// (e.g. a malformed birth date) surface as soap:Server faults rather than
// result strings.
func handleSOAP(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeFault(c, "soap:Client", "unreadable request body")
		return
	}

	env, err := soap.Decode(raw)
	if err != nil {
		writeFault(c, "soap:Client", err.Error())
		return
	}

	op, err := env.Operation()
	if err != nil {
		writeFault(c, "soap:Client", err.Error())
		return
	}

	result, err := dispatch(op, env.Body.Payload)
	if err != nil {
		if errors.Is(err, errUnknownOperation) {
			writeFault(c, "soap:Client", "unknown operation: "+op)
		} else {
			log.Printf("soap %s failed: %v", op, err)
			writeFault(c, "soap:Server", err.Error())
		}
		return
	}

	out, err := soap.EncodeResult(op, result)
	if err != nil {
		writeFault(c, "soap:Server", "response encoding failed")
		return
	}
	c.Data(http.StatusOK, soap.ContentType, out)
}

var errUnknownOperation = errors.New("unknown operation")

func dispatch(op string, payload []byte) (string, error) {
	switch op {
	case "add_customer":
		var req soap.AddCustomerRequest
		if err := xml.Unmarshal(payload, &req); err != nil {
			return "", err
		}
		return controllers.AddCustomer(req.Name, req.Family, req.FatherName,
			req.NationalID, req.ShenasnameID, req.BirthDate, req.Address)
	case "get_customer":
		var req soap.GetCustomerRequest
		if err := xml.Unmarshal(payload, &req); err != nil {
			return "", err
		}
		return controllers.GetCustomer(req.CustomerID)
	case "create_service":
		var req soap.CreateServiceRequest
		if err := xml.Unmarshal(payload, &req); err != nil {
			return "", err
		}
		return controllers.CreateService(req.CustomerID, req.PhoneNumber, req.ServiceName)
	case "get_customer_services":
		var req soap.GetCustomerServicesRequest
		if err := xml.Unmarshal(payload, &req); err != nil {
			return "", err
		}
		return controllers.GetCustomerServices(req.CustomerID)
	default:
		return "", errUnknownOperation
	}
}

func writeFault(c *gin.Context, code, message string) {
	out, err := soap.EncodeFault(code, message)
	if err != nil {
		c.String(http.StatusInternalServerError, "fault encoding failed")
		return
	}
	// SOAP 1.1 faults ride on a 500 status.
	c.Data(http.StatusInternalServerError, soap.ContentType, out)
}
