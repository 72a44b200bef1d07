package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"

	"github.com/seimoney/seimoney-go/core"
)

// Upload is a binary part of a multipart request.
type Upload struct {
	Name    string
	Content io.Reader
}

// ImageUpload is a product image with an optional caption.
type ImageUpload struct {
	Upload
	Caption string
}

// writeJSONFields serializes every top-level field of params as a
// JSON-encoded form field under its JSON key. Field names and encoding are
// a frozen wire contract with the backend; keys are written in sorted order
// so bodies are deterministic.
func writeJSONFields(w *multipart.Writer, params any) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encoding form fields: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("decoding form fields: %w", err)
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := w.WriteField(key, string(fields[key])); err != nil {
			return fmt.Errorf("writing form field %q: %w", key, err)
		}
	}

	return nil
}

// postMultipart sends the assembled form. The body is buffered so the
// payment transport can replay the request after settling a 402.
func (c *Client) postMultipart(ctx context.Context, path string, build func(w *multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := build(w); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, bytes.NewReader(buf.Bytes()), w.FormDataContentType(), out)
}

// UploadFile uploads a gated file. The binary goes under the "file" part;
// every other parameter is a JSON-encoded form field.
func (c *Client) UploadFile(ctx context.Context, params core.UploadFile, file Upload) (*core.GatedFile, error) {
	var uploaded *core.GatedFile
	err := c.postMultipart(ctx, "/files/upload", func(w *multipart.Writer) error {
		if err := writeJSONFields(w, params); err != nil {
			return err
		}

		part, err := w.CreateFormFile("file", file.Name)
		if err != nil {
			return fmt.Errorf("creating file part: %w", err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("writing file part: %w", err)
		}
		return nil
	}, &uploaded)
	if err != nil {
		return nil, err
	}
	return uploaded, nil
}

// CreateContract creates a work contract with an optional attached document
// under the "file" part.
func (c *Client) CreateContract(ctx context.Context, params core.CreateContract, document *Upload) (*core.Contract, error) {
	var contract *core.Contract
	err := c.postMultipart(ctx, "/contracts/create", func(w *multipart.Writer) error {
		if err := writeJSONFields(w, params); err != nil {
			return err
		}

		if document == nil {
			return nil
		}
		part, err := w.CreateFormFile("file", document.Name)
		if err != nil {
			return fmt.Errorf("creating file part: %w", err)
		}
		if _, err := io.Copy(part, document.Content); err != nil {
			return fmt.Errorf("writing file part: %w", err)
		}
		return nil
	}, &contract)
	if err != nil {
		return nil, err
	}
	return contract, nil
}

// ExtractContract extracts a contract draft from an uploaded document.
func (c *Client) ExtractContract(ctx context.Context, document Upload) (*core.ContractExtract, error) {
	var extract *core.ContractExtract
	err := c.postMultipart(ctx, "/contracts/extract", func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("file", document.Name)
		if err != nil {
			return fmt.Errorf("creating file part: %w", err)
		}
		if _, err := io.Copy(part, document.Content); err != nil {
			return fmt.Errorf("writing file part: %w", err)
		}
		return nil
	}, &extract)
	if err != nil {
		return nil, err
	}
	return extract, nil
}

// CreateProduct creates a checkout product. Images are appended under the
// "files" part name; a caption for image n goes under "caption-<n>",
// counting from 1.
func (c *Client) CreateProduct(ctx context.Context, params core.CreateProduct, images []ImageUpload) (*core.Product, error) {
	var product *core.Product
	err := c.postMultipart(ctx, "/products/create", func(w *multipart.Writer) error {
		if err := writeJSONFields(w, params); err != nil {
			return err
		}

		for i, image := range images {
			part, err := w.CreateFormFile("files", image.Name)
			if err != nil {
				return fmt.Errorf("creating image part: %w", err)
			}
			if _, err := io.Copy(part, image.Content); err != nil {
				return fmt.Errorf("writing image part: %w", err)
			}
			if image.Caption != "" {
				if err := w.WriteField(fmt.Sprintf("caption-%d", i+1), image.Caption); err != nil {
					return fmt.Errorf("writing caption field: %w", err)
				}
			}
		}
		return nil
	}, &product)
	if err != nil {
		return nil, err
	}
	return product, nil
}
