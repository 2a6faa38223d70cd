package endpoints

const (
	createPath = "/qa-test/createwd"
	statusPath = "/qa-test/status"
)

type Endpoints struct {
	Create string
	Get    string
}

// New joins baseURL with the fixed API paths. baseURL is not validated: an empty value gives
// bare paths that fail when a request is made.
func New(baseURL string) Endpoints {
	return Endpoints{
		Create: baseURL + createPath,
		Get:    baseURL + statusPath,
	}
}
