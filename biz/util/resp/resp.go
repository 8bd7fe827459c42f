package resp

import (
	"errors"
	"net/http"

	"moodmate/be/biz/model/dto"
	"moodmate/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server/binding"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/go-playground/validator/v10"
)

var statusByCode = map[int32]int{
	errs.ParamError.Code():           http.StatusBadRequest,
	errs.Unauthorized.Code():         http.StatusUnauthorized,
	errs.LoginFailed.Code():          http.StatusUnauthorized,
	errs.PolicyViolation.Code():      http.StatusForbidden,
	errs.RequestBlocked.Code():       http.StatusForbidden,
	errs.TooManyRequest.Code():       http.StatusTooManyRequests,
	errs.ServiceUnavailable.Code():   http.StatusServiceUnavailable,
	errs.ServerError.Code():          http.StatusInternalServerError,
	errs.UserNotFound.Code():         http.StatusNotFound,
	errs.TodoNotFound.Code():         http.StatusNotFound,
	errs.ConversationNotFound.Code(): http.StatusNotFound,
	errs.EmotionNotFound.Code():      http.StatusNotFound,
	errs.SongNotFound.Code():         http.StatusNotFound,
	errs.UserNameDuplicated.Code():   http.StatusConflict,
	errs.SongDuplicated.Code():       http.StatusConflict,
}

// HTTPStatus maps a biz error onto the status code it is answered with.
func HTTPStatus(bizErr errs.Error) int {
	if bizErr == nil {
		return http.StatusOK
	}
	if status, ok := statusByCode[bizErr.Code()]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func respWithErr(c *app.RequestContext, data any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, &dto.CommonResp{
			Success: true,
			Code:    int(errs.Success.Code()),
			Message: errs.Success.Msg(),
			Data:    data,
		})
		return
	}

	if bizErr, ok := err.(errs.Error); ok {
		c.JSON(HTTPStatus(bizErr), &dto.CommonResp{
			Success: false,
			Code:    int(bizErr.Code()),
			Message: bizErr.Msg(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, &dto.CommonResp{
		Success: false,
		Code:    int(errs.ServerError.Code()),
		Message: errs.ServerError.Msg(),
	})
}

func SuccessResp(c *app.RequestContext, data any) {
	respWithErr(c, data, nil)
}

func FailResp(c *app.RequestContext, bizErr errs.Error) {
	respWithErr(c, nil, bizErr)
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error, httpCode int) {
	c.AbortWithStatusJSON(httpCode, &dto.CommonResp{
		Success: false,
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
	})
}

// ValidatorFunc checks the `validate` tags of every request bound with
// BindAndValidate.
func ValidatorFunc() binding.ValidatorFunc {
	v := validator.New()
	v.SetTagName("validate")
	return func(_ *protocol.Request, req interface{}) error {
		return v.Struct(req)
	}
}

// BindErr turns a BindAndValidate failure into a ParamError naming the
// offending fields.
func BindErr(err error) errs.Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errs.ParamError.SetMsg(fe.Field() + " failed on " + fe.Tag())
	}
	return errs.ParamError.SetErr(err)
}
