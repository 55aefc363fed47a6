package constants

// RequestType classifies an extracted record.
type RequestType string

const (
	Venta   RequestType = "Venta"
	Queja   RequestType = "Queja"
	Factura RequestType = "Factura"
)

var allRequestTypes = []RequestType{
	Venta,
	Queja,
	Factura,
}

// AsStringSlice returns the request-type tags in their canonical order.
func AsStringSlice() []string {
	result := make([]string, len(allRequestTypes))
	for i, rt := range allRequestTypes {
		result[i] = string(rt)
	}
	return result
}
