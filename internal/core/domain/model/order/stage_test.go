package order_test

import (
	"fmt"
	"testing"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.UnknownStage))
		assert.Equal(t, 1, int(order.Filling))
		assert.Equal(t, 2, int(order.Covering))
		assert.Equal(t, 3, int(order.Decorating))
		assert.Equal(t, 4, int(order.Packing))
		assert.Equal(t, 5, int(order.Complete))
	})
}

func TestStage_Validate(t *testing.T) {
	t.Run("should validate pipeline stages", func(t *testing.T) {
		for _, stage := range []order.Stage{
			order.Filling, order.Covering, order.Decorating, order.Packing, order.Complete,
		} {
			require.NoError(t, stage.Validate(), "stage %s", stage)
		}
	})

	t.Run("should reject invalid values", func(t *testing.T) {
		for _, stage := range []order.Stage{order.UnknownStage, order.Stage(-1), order.Stage(6), order.Stage(100)} {
			err := stage.Validate()

			require.Error(t, err, "stage value %d", int(stage))
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStage_String(t *testing.T) {
	testCases := []struct {
		stage    order.Stage
		expected string
	}{
		{order.Filling, "Filling"},
		{order.Covering, "Covering"},
		{order.Decorating, "Decorating"},
		{order.Packing, "Packing"},
		{order.Complete, "Complete"},
		{order.UnknownStage, "Unknown"},
		{order.Stage(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.stage)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.stage.String())
		})
	}
}

func TestStageFromString(t *testing.T) {
	t.Run("should parse stage names case-insensitively", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.Stage
		}{
			{"Filling", order.Filling},
			{"filling", order.Filling},
			{"COVERING", order.Covering},
			{" Decorating ", order.Decorating},
			{"packing", order.Packing},
			{"complete", order.Complete},
		}

		for _, tc := range testCases {
			stage, err := order.StageFromString(tc.input)

			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.expected, stage)
		}
	})

	t.Run("should reject unrecognized names", func(t *testing.T) {
		for _, input := range []string{"", "Unknown", "Baking", "completed"} {
			_, err := order.StageFromString(input)

			require.Error(t, err, "input %q", input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStage_Apply(t *testing.T) {
	t.Run("should allow every legal edge", func(t *testing.T) {
		testCases := []struct {
			from       order.Stage
			transition order.Transition
			to         order.Stage
		}{
			{order.Filling, order.CompleteFilling, order.Covering},
			{order.Filling, order.StartCovering, order.Covering},
			{order.Covering, order.CompleteCovering, order.Decorating},
			{order.Covering, order.StartDecorating, order.Decorating},
			{order.Decorating, order.CompleteDecorating, order.Packing},
			{order.Packing, order.CompletePacking, order.Complete},
			{order.Packing, order.MarkOrderComplete, order.Complete},
			{order.Packing, order.QCReturnToDecorating, order.Decorating},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s via %s", tc.from, tc.transition), func(t *testing.T) {
				next, err := tc.from.Apply(tc.transition)

				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
			})
		}
	})

	t.Run("should reject transitions from wrong source stages", func(t *testing.T) {
		testCases := []struct {
			from       order.Stage
			transition order.Transition
		}{
			{order.Covering, order.CompleteFilling},
			{order.Filling, order.CompleteCovering},
			{order.Filling, order.CompleteDecorating},
			{order.Decorating, order.CompletePacking},
			{order.Decorating, order.QCReturnToDecorating},
			{order.Complete, order.CompletePacking},
			{order.Complete, order.QCReturnToDecorating},
			{order.UnknownStage, order.CompleteFilling},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s via %s", tc.from, tc.transition), func(t *testing.T) {
				next, err := tc.from.Apply(tc.transition)

				require.Error(t, err)
				assert.Equal(t, order.Stage(0), next)
				assert.Contains(t, err.Error(), "is not a valid stage to")
			})
		}
	})

	t.Run("complete is a sink: no transition leaves it", func(t *testing.T) {
		for _, tr := range []order.Transition{
			order.CompleteFilling, order.StartCovering, order.CompleteCovering,
			order.StartDecorating, order.CompleteDecorating, order.CompletePacking,
			order.MarkOrderComplete, order.QCReturnToDecorating,
		} {
			_, err := order.Complete.Apply(tr)
			require.Error(t, err, "transition %s", tr)
		}
	})

	t.Run("should reject unknown transitions", func(t *testing.T) {
		_, err := order.Filling.Apply(order.UnknownTransition)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTransitionFromString(t *testing.T) {
	t.Run("should parse every command name", func(t *testing.T) {
		testCases := map[string]order.Transition{
			"complete_filling":        order.CompleteFilling,
			"start_covering":          order.StartCovering,
			"complete_covering":       order.CompleteCovering,
			"start_decorating":        order.StartDecorating,
			"complete_decorating":     order.CompleteDecorating,
			"complete_packing":        order.CompletePacking,
			"mark_order_complete":     order.MarkOrderComplete,
			"qc_return_to_decorating": order.QCReturnToDecorating,
		}

		for name, expected := range testCases {
			tr, err := order.TransitionFromString(name)

			require.NoError(t, err, "command %q", name)
			assert.Equal(t, expected, tr)
			assert.Equal(t, name, tr.String())
		}
	})

	t.Run("should reject unrecognized commands", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "cancel_order", "Complete_Filling"} {
			_, err := order.TransitionFromString(name)
			require.Error(t, err, "command %q", name)
		}
	})
}
