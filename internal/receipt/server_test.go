package receipt

import (
	"bytes"
	"encoding/json"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("Server", func() {
	var (
		service     *Service
		server      *Server
		ghttpServer *ghttp.Server
	)

	postJSON := func(body []byte) *http.Response {
		resp, err := http.Post(ghttpServer.URL()+"/receipts/process", "application/json", bytes.NewReader(body))
		Expect(err).NotTo(HaveOccurred())
		return resp
	}

	decodeBody := func(resp *http.Response) map[string]any {
		defer resp.Body.Close()
		var body map[string]any
		Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
		return body
	}

	BeforeEach(func() {
		service = NewService(NewMemoryStore())
		server = NewServerWithMux(service, http.NewServeMux())
		ghttpServer = ghttp.NewServer()
		ghttpServer.AppendHandlers(server.ServeHTTP)
	})

	AfterEach(func() {
		ghttpServer.Close()
	})

	Describe("handleProcessReceipt", func() {
		When("the receipt is valid", func() {
			var resp *http.Response

			BeforeEach(func() {
				doc, err := json.Marshal(validDoc())
				Expect(err).NotTo(HaveOccurred())
				resp = postJSON(doc)
			})

			It("should return status OK", func() {
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
			})

			It("should return a non-empty id", func() {
				body := decodeBody(resp)
				Expect(body).To(HaveKey("id"))
				Expect(body["id"]).NotTo(BeEmpty())
			})
		})

		When("the body is not JSON", func() {
			It("should return status Bad Request with a generic message", func() {
				resp := postJSON([]byte("{not json"))
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
				Expect(decodeBody(resp)).To(HaveKeyWithValue("message", "Invalid JSON"))
			})
		})

		When("the body is JSON null", func() {
			It("should return status Bad Request with a generic message", func() {
				resp := postJSON([]byte("null"))
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
				Expect(decodeBody(resp)).To(HaveKeyWithValue("message", "Invalid JSON"))
			})
		})

		When("the body is a JSON array", func() {
			It("should return status Bad Request with a generic message", func() {
				resp := postJSON([]byte("[]"))
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
				Expect(decodeBody(resp)).To(HaveKeyWithValue("message", "Invalid JSON"))
			})
		})

		When("the body is an empty object", func() {
			It("should list every missing field", func() {
				resp := postJSON([]byte("{}"))
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
				body := decodeBody(resp)
				Expect(body).To(HaveKeyWithValue("message", "The receipt is invalid. Please verify input."))
				Expect(body["errors"]).To(Equal([]any{
					"Missing field: retailer",
					"Missing field: purchaseDate",
					"Missing field: purchaseTime",
					"Missing field: items",
					"Missing field: total",
				}))
			})
		})

		When("the receipt fails validation", func() {
			It("should return the ordered error list", func() {
				doc := validDoc()
				doc["retailer"] = "###"
				doc["total"] = "9"
				raw, err := json.Marshal(doc)
				Expect(err).NotTo(HaveOccurred())

				resp := postJSON(raw)
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
				body := decodeBody(resp)
				Expect(body["errors"]).To(Equal([]any{
					"Retailer contains invalid characters. Only alphanumerics, spaces, hyphens, and & are allowed.",
					"Total must be a string with exactly two decimal places (e.g., 35.35).",
				}))
			})
		})
	})

	Describe("handleGetPoints", func() {
		When("the id was never issued", func() {
			It("should return status Not Found with a message", func() {
				resp, err := http.Get(ghttpServer.URL() + "/receipts/nope/points")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
				Expect(decodeBody(resp)).To(HaveKeyWithValue("message", "No receipt found for that id"))
			})
		})

		When("a receipt was processed", func() {
			var id string

			BeforeEach(func() {
				doc, err := json.Marshal(validDoc())
				Expect(err).NotTo(HaveOccurred())
				resp := postJSON(doc)
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				raw, ok := decodeBody(resp)["id"].(string)
				Expect(ok).To(BeTrue())
				id = raw
				ghttpServer.AppendHandlers(server.ServeHTTP)
			})

			It("should return its points", func() {
				resp, err := http.Get(ghttpServer.URL() + "/receipts/" + id + "/points")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				// 6 retailer + 25 multiple of 0.25 + 6 odd day
				Expect(decodeBody(resp)).To(HaveKeyWithValue("points", BeNumerically("==", 37)))
			})
		})
	})

	Describe("routing", func() {
		When("the method does not match the route", func() {
			It("should return status Method Not Allowed", func() {
				resp, err := http.Get(ghttpServer.URL() + "/receipts/process")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusMethodNotAllowed))
				resp.Body.Close()
			})
		})
	})
})
