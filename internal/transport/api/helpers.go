package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const maxPageLimit = 100

var errInvalidID = errors.New("invalid id")

// getActorFromContext берет из контекста gin участника запроса. Участник устанавливается в
// middlewares.AuthRequired. Если значения в контексте нет, вернется нулевой Actor без прав.
func getActorFromContext(c *gin.Context) domain.Actor {
	actor, _ := middlewares.ActorFromContext(c)
	return actor
}

// abortWithServiceError прерывает запрос со статусом, соответствующим результату операции. Текст ожидаемых
// ошибок отдается клиенту, остальные скрываются.
func abortWithServiceError(c *gin.Context, err error) {
	outcome := domain.OutcomeOf(err)
	errType := gin.ErrorTypePrivate
	if outcome.IsExpected() {
		errType = gin.ErrorTypePublic
	}
	_ = c.AbortWithError(middlewares.StatusByOutcome(outcome), err).SetType(errType)
}

// bindJSON парсит тело запроса. Ошибки валидации отдаются со статусом 422, остальные с 400.
func bindJSON(c *gin.Context, params any) bool {
	if bindErr := c.ShouldBindJSON(params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return false
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return false
	}
	return true
}

// paramID парсит положительный id из параметра пути.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errInvalidID).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

type listQuery struct {
	Status string `form:"status"`
	Limit  uint   `binding:"omitempty,max=100" form:"limit"`
	Offset uint   `form:"offset"`
}

// bindListQuery парсит параметры постраничной выборки. Пустой status заменяется значением по умолчанию.
func bindListQuery(c *gin.Context, defaultStatus string) (listQuery, bool) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return q, false
	}
	if q.Status == "" {
		q.Status = defaultStatus
	}
	return q, true
}

func (q listQuery) page() repoargs.Page {
	limit := q.Limit
	if limit == 0 || limit > maxPageLimit {
		limit = maxPageLimit
	}
	return repoargs.Page{Limit: limit, Offset: q.Offset}
}
