// Package result defines the endpoint result hierarchy and the static
// result-kind catalog used by the annotation-synthesis pass.
//
// Two families exist:
//   - status family: carries only an HTTP status code (OkResult, NotFoundResult, ...)
//   - object family: carries a status code plus a response value (OkObjectResult, ...)
//
// The helper constructors (Ok, NotFound, ...) are variadic so the same bare
// call works with and without a payload; the rewriter classifies the call by
// its argument count at the call site.
package result

// Result is implemented by every concrete result kind.
type Result interface {
	StatusCode() int
}

// StatusCodeResult is the base of the status family.
type StatusCodeResult struct {
	Code int
}

// StatusCode returns the HTTP status code of the result.
func (r StatusCodeResult) StatusCode() int { return r.Code }

// ObjectResult is the base of the object family.
type ObjectResult struct {
	Code  int
	Value any
}

// StatusCode returns the HTTP status code of the result.
func (r ObjectResult) StatusCode() int { return r.Code }

// Status family.
type (
	OkResult                  struct{ StatusCodeResult }
	CreatedResult             struct{ StatusCodeResult }
	NoContentResult           struct{ StatusCodeResult }
	BadRequestResult          struct{ StatusCodeResult }
	UnauthorizedResult        struct{ StatusCodeResult }
	ForbiddenResult           struct{ StatusCodeResult }
	NotFoundResult            struct{ StatusCodeResult }
	ConflictResult            struct{ StatusCodeResult }
	UnprocessableEntityResult struct{ StatusCodeResult }
)

// Object family.
type (
	OkObjectResult                  struct{ ObjectResult }
	CreatedObjectResult             struct{ ObjectResult }
	BadRequestObjectResult          struct{ ObjectResult }
	NotFoundObjectResult            struct{ ObjectResult }
	ConflictObjectResult            struct{ ObjectResult }
	UnprocessableEntityObjectResult struct{ ObjectResult }
)

func status(code int) StatusCodeResult { return StatusCodeResult{Code: code} }

func object(code int, v []any) ObjectResult {
	res := ObjectResult{Code: code}
	if len(v) > 0 {
		res.Value = v[0]
	}

	return res
}

// Ok returns a 200 result; with a payload it returns the object variant.
func Ok(v ...any) Result {
	if len(v) == 0 {
		return OkResult{status(200)}
	}

	return OkObjectResult{object(200, v)}
}

// Created returns a 201 result; with a payload it returns the object variant.
func Created(v ...any) Result {
	if len(v) == 0 {
		return CreatedResult{status(201)}
	}

	return CreatedObjectResult{object(201, v)}
}

// NoContent returns a 204 result.
func NoContent() Result { return NoContentResult{status(204)} }

// BadRequest returns a 400 result; with a payload it returns the object variant.
func BadRequest(v ...any) Result {
	if len(v) == 0 {
		return BadRequestResult{status(400)}
	}

	return BadRequestObjectResult{object(400, v)}
}

// Unauthorized returns a 401 result.
func Unauthorized() Result { return UnauthorizedResult{status(401)} }

// Forbidden returns a 403 result.
func Forbidden() Result { return ForbiddenResult{status(403)} }

// NotFound returns a 404 result; with a payload it returns the object variant.
func NotFound(v ...any) Result {
	if len(v) == 0 {
		return NotFoundResult{status(404)}
	}

	return NotFoundObjectResult{object(404, v)}
}

// Conflict returns a 409 result; with a payload it returns the object variant.
func Conflict(v ...any) Result {
	if len(v) == 0 {
		return ConflictResult{status(409)}
	}

	return ConflictObjectResult{object(409, v)}
}

// UnprocessableEntity returns a 422 result; with a payload it returns the
// object variant.
func UnprocessableEntity(v ...any) Result {
	if len(v) == 0 {
		return UnprocessableEntityResult{status(422)}
	}

	return UnprocessableEntityObjectResult{object(422, v)}
}
