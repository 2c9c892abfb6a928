package validate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/validate"
)

func validArea() entity.ProjectArea {
	a := entity.NewProjectArea()
	a.AreaName = "Living Room"
	a.SquareFootage = 320
	a.CeilingHeight = 9
	a.LaborCost = decimal.NewFromInt(400)
	a.MaterialCost = decimal.NewFromInt(150)
	return a
}

func TestDocument_ValidRecordHasNoErrors(t *testing.T) {
	errs := validate.Document(validate.DocumentEdit{
		Title: "Exterior repaint",
		Areas: []entity.ProjectArea{validArea()},
	})

	assert.True(t, errs.OK(), "expected no errors, got: %s", errs.Join())
}

func TestDocument_TitleRequired(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		errs := validate.Document(validate.DocumentEdit{
			Title: title,
			Areas: []entity.ProjectArea{validArea()},
		})
		assert.Equal(t, "Title is required", errs["title"], "title %q must be rejected", title)
	}

	errs := validate.Document(validate.DocumentEdit{
		Title: "Painted",
		Areas: []entity.ProjectArea{validArea()},
	})
	_, present := errs["title"]
	assert.False(t, present, "non-blank title must not produce a title error")
}

func TestDocument_EveryAreaNeedsAName(t *testing.T) {
	unnamed := validArea()
	unnamed.AreaName = "  "

	errs := validate.Document(validate.DocumentEdit{
		Title: "Interior",
		Areas: []entity.ProjectArea{validArea(), unnamed},
	})

	require.False(t, errs.OK())
	assert.Equal(t, "Area name is required", errs["areas[1].area_name"])
	_, first := errs["areas[0].area_name"]
	assert.False(t, first, "the named area must not be flagged")
}

func TestDocument_ManualTotalMustBePositive(t *testing.T) {
	edit := validate.DocumentEdit{
		Title:       "Manual pricing",
		Areas:       []entity.ProjectArea{validArea()},
		ManualTotal: true,
	}

	errs := validate.Document(edit)
	assert.Equal(t, "Total amount must be greater than 0", errs["total_amount"])

	edit.TotalAmount = decimal.NewFromInt(-5)
	errs = validate.Document(edit)
	assert.NotEmpty(t, errs["total_amount"])

	edit.TotalAmount = decimal.NewFromInt(400)
	errs = validate.Document(edit)
	assert.True(t, errs.OK(), "positive override must pass: %s", errs.Join())
}

func TestDocument_AreaConstraintChecks(t *testing.T) {
	a := validArea()
	a.AreaType = "underwater"
	a.SurfaceType = "velvet"
	a.NumberOfCoats = 11
	a.LaborCost = decimal.NewFromInt(-1)

	errs := validate.Document(validate.DocumentEdit{Title: "x", Areas: []entity.ProjectArea{a}})

	assert.NotEmpty(t, errs["areas[0].area_type"])
	assert.NotEmpty(t, errs["areas[0].surface_type"])
	assert.NotEmpty(t, errs["areas[0].number_of_coats"])
	assert.NotEmpty(t, errs["areas[0].labor_cost"])
}

func TestEmail_Pattern(t *testing.T) {
	assert.True(t, validate.Email("a@b.co"))
	assert.True(t, validate.Email("crew.lead+quotes@paintpro.example.com"))

	assert.False(t, validate.Email("a@b"), "missing TLD dot must be rejected")
	assert.False(t, validate.Email("@b.co"), "empty local part must be rejected")
	assert.False(t, validate.Email("a b@c.co"), "whitespace must be rejected")
	assert.False(t, validate.Email(""))
}

func TestCompanySettings_RequiredFields(t *testing.T) {
	errs := validate.CompanySettings(entity.CompanySettings{})

	assert.NotEmpty(t, errs["company_name"])
	assert.NotEmpty(t, errs["company_address"])
	assert.NotEmpty(t, errs["company_phone"])
	assert.NotEmpty(t, errs["company_email"])
}

func TestCompanySettings_ValidProfilePasses(t *testing.T) {
	errs := validate.CompanySettings(entity.CompanySettings{
		CompanyName:    "ProCoat Painting",
		CompanyAddress: "12 Harbor Way, Victoria BC",
		CompanyPhone:   "250-555-0199",
		CompanyEmail:   "office@procoat.ca",
	})

	assert.True(t, errs.OK(), errs.Join())
}

func TestCompanySettings_BadEmailFlagged(t *testing.T) {
	errs := validate.CompanySettings(entity.CompanySettings{
		CompanyName:    "ProCoat Painting",
		CompanyAddress: "12 Harbor Way",
		CompanyPhone:   "250-555-0199",
		CompanyEmail:   "office@procoat",
	})

	assert.Equal(t, "Please enter a valid email address", errs["company_email"])
}

func TestErrors_JoinIsDeterministic(t *testing.T) {
	errs := validate.Errors{}
	errs.Add("title", "Title is required")
	errs.Add("company_email", "Please enter a valid email address")

	joined := errs.Join()
	assert.Equal(t, "company_email: Please enter a valid email address; title: Title is required", joined)
	assert.True(t, strings.Contains(joined, "; "))
}

func TestLogo_AllowListAndSizeCap(t *testing.T) {
	assert.NoError(t, validate.Logo("logo.png", "image/png", 1024))
	assert.NoError(t, validate.Logo("logo.jpg", "", 1024), "extension fallback must work")
	assert.NoError(t, validate.Logo("logo.gif", "image/gif; charset=binary", 1024), "type parameters are ignored")

	err := validate.Logo("logo.pdf", "application/pdf", 1024)
	assert.True(t, errors.Is(err, domain.ErrLogoBadType))

	err = validate.Logo("logo.png", "image/png", validate.MaxLogoBytes+1)
	assert.True(t, errors.Is(err, domain.ErrLogoTooLarge))
}

func TestClient_NameRequiredEmailOptional(t *testing.T) {
	errs := validate.Client(entity.Client{})
	assert.NotEmpty(t, errs["name"])

	errs = validate.Client(entity.Client{Name: "Dana Wong"})
	assert.True(t, errs.OK())

	errs = validate.Client(entity.Client{Name: "Dana Wong", Email: "dana@home"})
	assert.NotEmpty(t, errs["email"])
}
