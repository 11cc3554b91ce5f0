package cmd

import (
	"net/http"
	"strings"

	"github.com/gogf/gf/v2/errors/gcode"
	"github.com/gogf/gf/v2/errors/gerror"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"

	"github.com/fineduguide/fineduguide/core/errors"
)

// 上传文件大小限制: 50MB
const maxUploadSize = 50 << 20

// MiddlewareMultipartMaxMemory limits multipart upload size on the upload route.
func MiddlewareMultipartMaxMemory(r *ghttp.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		r.Middleware.Next()
		return
	}

	if strings.HasPrefix(r.URL.Path, "/upload-file") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			r.Response.WriteStatus(http.StatusRequestEntityTooLarge)
			r.Response.WriteJson(g.Map{
				"error": "File size exceeds the upload limit (50MB)",
			})
			return
		}
	}

	r.Middleware.Next()
}

// MiddlewareHandlerResponse maps handler results and errors to the HTTP response.
// Business errors carry their own status code; everything else is an internal error.
func MiddlewareHandlerResponse(r *ghttp.Request) {
	r.Middleware.Next()

	// There's custom buffer content, it then exits current handler.
	if r.Response.BufferLength() > 0 || r.Response.Writer.BytesWritten() > 0 {
		return
	}

	var (
		err = r.GetError()
		res = r.GetHandlerResponse()
	)

	if err == nil {
		r.Response.WriteJson(res)
		return
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		r.Response.WriteStatus(appErr.Code.HTTPStatusCode())
		r.Response.WriteJson(g.Map{"error": appErr.Message})
		return
	}

	// gf 参数校验错误按 400 返回
	if gerror.Code(err) == gcode.CodeValidationFailed {
		r.Response.WriteStatus(http.StatusBadRequest)
		r.Response.WriteJson(g.Map{"error": err.Error()})
		return
	}

	r.Response.WriteStatus(http.StatusInternalServerError)
	r.Response.WriteJson(g.Map{"error": "Unexpected error occurred"})
}
