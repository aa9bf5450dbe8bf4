package ui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/yousci/yousci-cli/internal/apperr"
)

// Charge limits accepted by the interactive form.
const (
	FormChargeMin     = 0.10
	FormChargeMax     = 0.80
	FormChargeDefault = 0.45
)

// PredictInput is what the prediction form collects.
type PredictInput struct {
	Metal   string
	Support string
	Charge  float64
}

// ParseFormCharge parses and range-checks a charge typed into the form.
func ParseFormCharge(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("enter a number such as %.2f", FormChargeDefault)
	}
	if math.IsNaN(v) || v < FormChargeMin || v > FormChargeMax {
		return 0, fmt.Errorf("charge must be between %.2f and %.2f e", FormChargeMin, FormChargeMax)
	}
	return v, nil
}

// RunPredictForm asks for metal, support and charge. Fields already set in
// defaults are preselected. Aborting the form returns apperr.ErrCancelled.
func RunPredictForm(metals, supports []string, defaults PredictInput) (PredictInput, error) {
	in := defaults
	if in.Metal == "" && len(metals) > 0 {
		in.Metal = metals[0]
	}
	if in.Support == "" && len(supports) > 0 {
		in.Support = supports[0]
	}
	if in.Charge == 0 {
		in.Charge = FormChargeDefault
	}
	chargeText := strconv.FormatFloat(in.Charge, 'f', 2, 64)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Catalyst Prediction").
				Description("Choose a metal, a perovskite support and the metal's Bader charge."),
			huh.NewSelect[string]().
				Title("Metal").
				Options(huh.NewOptions(metals...)...).
				Value(&in.Metal),
			huh.NewSelect[string]().
				Title("Support").
				Options(huh.NewOptions(supports...)...).
				Value(&in.Support),
			huh.NewInput().
				Title("Bader charge (e)").
				Description(fmt.Sprintf("%.2f to %.2f, optimal window 0.45-0.60", FormChargeMin, FormChargeMax)).
				Value(&chargeText).
				Validate(func(s string) error {
					_, err := ParseFormCharge(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return PredictInput{}, apperr.ErrCancelled
		}
		return PredictInput{}, err
	}

	charge, err := ParseFormCharge(chargeText)
	if err != nil {
		return PredictInput{}, apperr.User(err.Error())
	}
	in.Charge = charge
	return in, nil
}
