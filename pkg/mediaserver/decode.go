package mediaserver

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// decodeContainer reads a mediaContainer response body, sniffing the
// content type and falling back to the other format if the declared type
// doesn't parse — the remote server is documented to answer either way
// depending on the Accept header it honors.
func decodeContainer(resp *http.Response) (*mediaContainer, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	container := &mediaContainer{}

	if strings.Contains(contentType, "xml") {
		if err := xml.Unmarshal(body, container); err == nil {
			return container, nil
		}
	}

	if err := json.Unmarshal(body, container); err == nil {
		return container, nil
	}

	if err := xml.Unmarshal(body, container); err == nil {
		return container, nil
	}

	return nil, fmt.Errorf("body is neither valid JSON nor XML (content-type %q)", contentType)
}
