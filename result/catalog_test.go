package result

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_FamilyOrder(t *testing.T) {
	kinds := Catalog()
	require.NotEmpty(t, kinds)

	t.Log(spew.Sdump(kinds))

	// status family enumerates strictly before the object family; name
	// resolution priority depends on it
	seenObject := false
	for _, k := range kinds {
		if k.Family == FamilyObject {
			seenObject = true
		}

		if seenObject {
			assert.Equal(t, FamilyObject, k.Family, "status kind %s listed after object kinds", k.Name)
		}
	}
}

func TestCatalog_Arity(t *testing.T) {
	for _, k := range Catalog() {
		switch k.Family {
		case FamilyStatus:
			assert.Equal(t, 0, k.Arity, "%s", k.Name)
		case FamilyObject:
			assert.Equal(t, 1, k.Arity, "%s", k.Name)
		}
	}
}

func TestResolveName(t *testing.T) {
	k, ok := ResolveName("OkResult")
	require.True(t, ok)
	assert.Equal(t, FamilyStatus, k.Family)
	assert.Equal(t, 200, k.Status)

	k, ok = ResolveName("OkObjectResult")
	require.True(t, ok)
	assert.Equal(t, FamilyObject, k.Family)
	assert.Equal(t, 200, k.Status)

	_, ok = ResolveName("TeapotResult")
	assert.False(t, ok)
}

func TestKind_Annotation(t *testing.T) {
	k, ok := ResolveName("OkObjectResult")
	require.True(t, ok)

	a := k.Annotation()
	assert.Equal(t, "produces", a.Name)
	assert.Equal(t, "(typeof(OkObjectResult), 200)", a.Args)
	assert.Equal(t, "//typelift:produces (typeof(OkObjectResult), 200)", a.Render())
}

func TestHelpers_ArityDrivesFamily(t *testing.T) {
	assert.IsType(t, OkResult{}, Ok())
	assert.IsType(t, OkObjectResult{}, Ok("payload"))
	assert.IsType(t, NotFoundResult{}, NotFound())
	assert.IsType(t, NotFoundObjectResult{}, NotFound("missing"))
	assert.IsType(t, NoContentResult{}, NoContent())
}

func TestHelpers_StatusCodes(t *testing.T) {
	assert.Equal(t, 200, Ok().StatusCode())
	assert.Equal(t, 201, Created().StatusCode())
	assert.Equal(t, 204, NoContent().StatusCode())
	assert.Equal(t, 400, BadRequest().StatusCode())
	assert.Equal(t, 401, Unauthorized().StatusCode())
	assert.Equal(t, 403, Forbidden().StatusCode())
	assert.Equal(t, 404, NotFound().StatusCode())
	assert.Equal(t, 409, Conflict().StatusCode())
	assert.Equal(t, 422, UnprocessableEntity().StatusCode())
}

func TestHelpers_CarryPayload(t *testing.T) {
	res, ok := Ok(42).(OkObjectResult)
	require.True(t, ok)
	assert.Equal(t, 42, res.Value)

	res2, ok := BadRequest("bad input").(BadRequestObjectResult)
	require.True(t, ok)
	assert.Equal(t, "bad input", res2.Value)
}

func TestHelpers_MatchCatalogStatus(t *testing.T) {
	results := map[string]Result{
		"OkResult":       Ok(),
		"OkObjectResult": Ok(1),
		"NotFoundResult": NotFound(),
		"CreatedResult":  Created(),
	}

	for name, res := range results {
		k, ok := ResolveName(name)
		require.True(t, ok, name)
		assert.Equal(t, k.Status, res.StatusCode(), name)
	}
}
