package guilders

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/alinalihassan/guilders/date"
)

// This file fetches daily exchange rates from an external provider.
// The default endpoint is the Frankfurter API, but any provider returning
// a JSON document with a code→rate map works: the map's location in the
// response is a JSONPath expression, so switching providers is a flag
// change, not a code change.

// DefaultRatesURL is the endpoint queried by FetchRates unless overridden.
const DefaultRatesURL = "https://api.frankfurter.dev/v1/latest"

// DefaultRatesPath locates the code→rate map in the provider response.
const DefaultRatesPath = "$.rates"

// diskCache implements a simple disk cache for HTTP responses.
// Keys include today's date, so cached responses expire daily.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	if cached, err := c.get(key, req); err == nil {
		return cached, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0644)
}

// daily returns a client whose responses are cached until the next day.
// Rates are daily data; there is no point hitting the provider twice.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET and unmarshals the JSON response into data.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// FetchRates fetches today's rate table for the given base currency.
// rawURL and ratesPath default when empty. The base currency itself is
// included at rate 1, and the result is sorted by code.
func FetchRates(rawURL, ratesPath, base string) ([]Rate, error) {
	if rawURL == "" {
		rawURL = DefaultRatesURL
	}
	if ratesPath == "" {
		ratesPath = DefaultRatesPath
	}
	addr, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid rates url %q: %w", rawURL, err)
	}
	q := addr.Query()
	q.Set("base", base)
	addr.RawQuery = q.Encode()

	var jobj any
	if err := jwget(daily(), addr.String(), &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch rates from %q: %w", addr.Host, err)
	}

	jval, err := jsonpath.Get(ratesPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot extract rates at %q: %w", ratesPath, err)
	}
	jmap, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("rates at %q are %T, want an object", ratesPath, jval)
	}

	rates := []Rate{{Code: base, Rate: 1}}
	for code, v := range jmap {
		rate, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("rate for %q is %T, want a number", code, v)
		}
		if code == base {
			continue
		}
		rates = append(rates, Rate{Code: code, Rate: rate})
	}
	slices.SortFunc(rates, func(a, b Rate) int { return strings.Compare(a.Code, b.Code) })
	return rates, nil
}
