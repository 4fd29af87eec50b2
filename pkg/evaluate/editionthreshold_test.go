package evaluate

import (
	"testing"

	"github.com/ouijasearch/ouija/pkg/model"
)

func TestEditionThreshold(t *testing.T) {
	tests := []struct {
		edition model.Edition
		want    float64
	}{
		{model.EditionNegative, 0.10},
		{model.EditionFoil, 0.05},
		{model.EditionHolographic, 0.02},
		{model.EditionPolychrome, 0.01},
		{model.EditionNone, 0},
	}
	for _, tt := range tests {
		if got := EditionThreshold(tt.edition); got != tt.want {
			t.Errorf("EditionThreshold(%v) = %v, want %v", tt.edition, got, tt.want)
		}
	}
}
