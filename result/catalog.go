package result

import (
	"fmt"
	"sync"

	"typelift/internal/common"
	"typelift/internal/rewrite"
)

// Family names one of the two result families.
type Family int

const (
	// FamilyStatus holds results that carry only a status code.
	FamilyStatus Family = iota
	// FamilyObject holds results that carry a status code plus a value.
	FamilyObject
)

// String returns a human-readable representation of the Family.
func (f Family) String() string {
	switch f {
	case FamilyStatus:
		return "status"
	case FamilyObject:
		return "object"
	default:
		return "unknown"
	}
}

// Kind is one catalog entry: a concrete result type the rewriter can name in
// a produces directive.
type Kind struct {
	// Name is the simple type name, e.g. "OkObjectResult".
	Name string
	// Family is the base family the kind belongs to.
	Family Family
	// Status is the HTTP status code the kind reports.
	Status int
	// Arity is the number of constructor arguments (0 or 1).
	Arity int
}

// BuildArguments returns the raw argument text for the produces directive.
func (k Kind) BuildArguments() string {
	return fmt.Sprintf("(typeof(%s), %d)", k.Name, k.Status)
}

// Annotation returns the produces annotation for the kind.
func (k Kind) Annotation() rewrite.Annotation {
	return rewrite.NewAnnotation("produces", k.BuildArguments())
}

var catalogOnce = sync.OnceValue(buildCatalog)

// buildCatalog enumerates the status family followed by the object family.
// Lookup order depends on this: ResolveName must try status kinds first.
func buildCatalog() []Kind {
	kinds := []Kind{
		{Name: "OkResult", Family: FamilyStatus, Status: 200},
		{Name: "CreatedResult", Family: FamilyStatus, Status: 201},
		{Name: "NoContentResult", Family: FamilyStatus, Status: 204},
		{Name: "BadRequestResult", Family: FamilyStatus, Status: 400},
		{Name: "UnauthorizedResult", Family: FamilyStatus, Status: 401},
		{Name: "ForbiddenResult", Family: FamilyStatus, Status: 403},
		{Name: "NotFoundResult", Family: FamilyStatus, Status: 404},
		{Name: "ConflictResult", Family: FamilyStatus, Status: 409},
		{Name: "UnprocessableEntityResult", Family: FamilyStatus, Status: 422},

		{Name: "OkObjectResult", Family: FamilyObject, Status: 200, Arity: 1},
		{Name: "CreatedObjectResult", Family: FamilyObject, Status: 201, Arity: 1},
		{Name: "BadRequestObjectResult", Family: FamilyObject, Status: 400, Arity: 1},
		{Name: "NotFoundObjectResult", Family: FamilyObject, Status: 404, Arity: 1},
		{Name: "ConflictObjectResult", Family: FamilyObject, Status: 409, Arity: 1},
		{Name: "UnprocessableEntityObjectResult", Family: FamilyObject, Status: 422, Arity: 1},
	}

	for _, k := range kinds {
		if !common.IsInRange(100, k.Status, 599) {
			panic(fmt.Sprintf("result: kind %s has status %d outside 1xx-5xx", k.Name, k.Status))
		}
	}

	return kinds
}

// Catalog returns every known result kind, status family first. The catalog
// is built once and shared; callers must not modify the returned slice.
func Catalog() []Kind {
	return catalogOnce()
}

// ResolveName looks up a kind by simple type name. Status-family kinds are
// searched before object-family kinds and the first match wins.
func ResolveName(name string) (Kind, bool) {
	for _, k := range Catalog() {
		if k.Name == name {
			return k, true
		}
	}

	return Kind{}, false
}
