package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"

	"go-gin-stream-events/internal/middleware"
	"go-gin-stream-events/internal/model"
	"go-gin-stream-events/internal/session"

	"github.com/gin-gonic/gin"
)

var (
	InvalidJSON = `{"invalid": json}`

	owner = &model.Account{ID: 1, Username: "alice"}
	staff = &model.Account{ID: 3, Username: "admin", IsStaff: true}
)

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if raw, ok := data.(string); ok {
		return bytes.NewBufferString(raw)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// create multipart request with a single file field
func createMultipartRequest(method, url, field string, content []byte) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile(field, "upload.png")
	_, _ = part.Write(content)
	_ = writer.Close()

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// actAs 模擬已登入的帳號，nil 代表匿名
func actAs(account *model.Account) gin.HandlerFunc {
	return func(c *gin.Context) {
		if account != nil {
			middleware.SetAccount(c, account, &session.Session{ID: "sid", AccountID: account.ID})
		}
		c.Next()
	}
}

func decode(body *bytes.Buffer) map[string]interface{} {
	var out map[string]interface{}
	_ = json.Unmarshal(body.Bytes(), &out)
	return out
}
