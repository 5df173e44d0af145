package hosting

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/pkg/errors"
)

// unsignedParams are never part of a signature.
var unsignedParams = map[string]bool{
	"file":          true,
	"cloud_name":    true,
	"resource_type": true,
	"api_key":       true,
}

// Sign computes the provider signature of params with secret. Parameters
// that are empty or never signed are dropped first.
func Sign(params map[string]interface{}, secret string) (string, error) {
	sig, err := api.SignParameters(signedValues(params), secret)
	if err != nil {
		return "", errors.Wrap(err, "sign parameters")
	}
	return sig, nil
}

func signedValues(params map[string]interface{}) url.Values {
	v := url.Values{}
	for k, p := range params {
		if unsignedParams[k] {
			continue
		}
		if s := paramValue(p); s != "" {
			v.Set(k, s)
		}
	}
	return v
}

// paramValue renders a JSON decoded parameter the way the provider expects
// it in a signature. List values are joined with commas.
func paramValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// JSON numbers arrive as float64; timestamps must not be rendered
		// in exponent form.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, paramValue(e))
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(t, ",")
	default:
		return fmt.Sprintf("%v", t)
	}
}
