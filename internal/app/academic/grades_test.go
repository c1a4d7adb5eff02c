package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrade(t *testing.T) {
	g, err := ParseGrade("TRAS-7")
	require.NoError(t, err)
	assert.Equal(t, Grade("TRAS-7"), g)

	g, err = ParseGrade("10-Matr. Honor")
	require.NoError(t, err)
	assert.Equal(t, Grade10MH, g)

	_, err = ParseGrade("11")
	assert.Error(t, err)

	_, err = ParseGrade("CV-4")
	assert.Error(t, err)

	_, err = ParseGrade("MARAVILLOSO")
	assert.Error(t, err)
}

func TestGradeClassification(t *testing.T) {
	passing := []Grade{"5", "7", "10", Grade10MH, GradeAPTO, GradeEX,
		GradeCV, "CV-5", "CV-10", GradeCV10MH, "TRAS-5", "TRAS-10", GradeTR10MH}
	for _, g := range passing {
		assert.True(t, g.Passing(), "expected %s to pass", g)
		assert.False(t, g.Failing(), "expected %s not to fail", g)
	}

	failing := []Grade{"1", "4", GradeNoAPTO}
	for _, g := range failing {
		assert.True(t, g.Failing(), "expected %s to fail", g)
		assert.False(t, g.Passing(), "expected %s not to pass", g)
	}

	assert.False(t, GradeNE.Passing())
	assert.False(t, GradeNE.Failing())
	assert.True(t, GradeNE.ConsumesAttempt())
	assert.False(t, GradeRC.ConsumesAttempt())
}

func TestGradeDisplay(t *testing.T) {
	assert.Equal(t, "7*", Grade("TRAS-7").Display())
	assert.Equal(t, "10*", Grade("TRAS-10").Display())
	assert.Equal(t, "10-MH*", GradeTR10MH.Display())
	assert.Equal(t, "8", Grade("8").Display())
	assert.Equal(t, "APTO", GradeAPTO.Display())
	assert.Equal(t, "CV-6", Grade("CV-6").Display())
}

func TestGradeAverageValue(t *testing.T) {
	cases := []struct {
		grade       Grade
		value       float64
		contributes bool
	}{
		{"8", 8, true},
		{"3", 3, true},
		{Grade10MH, 10, true},
		{GradeCV10MH, 10, true},
		{GradeTR10MH, 10, true},
		{GradeCV, 5, true},
		{"CV-7", 7, true},
		{"TRAS-7", 7, true},
		{GradeNE, 0, true},
		{GradeRC, 0, true},
		{GradeAPTO, 0, false},
		{GradeEX, 0, false},
		{GradeNoAPTO, 0, false},
	}
	for _, c := range cases {
		v, ok := c.grade.AverageValue()
		assert.Equal(t, c.contributes, ok, "grade %s", c.grade)
		assert.Equal(t, c.value, v, "grade %s", c.grade)
	}
}

func TestGradeRankOrder(t *testing.T) {
	// Best first, per the certificate resolution order.
	order := []Grade{
		Grade10MH, GradeCV10MH, GradeTR10MH,
		"10", "9", "8", "7", "6", "5",
		GradeAPTO, GradeEX,
		"CV-10", "CV-5", GradeCV,
		"TRAS-10", "TRAS-5",
		"4", "1", GradeNoAPTO,
		GradeNE, GradeRC,
	}
	for i := 1; i < len(order); i++ {
		assert.Greater(t, order[i-1].Rank(), order[i].Rank(),
			"%s should outrank %s", order[i-1], order[i])
	}
}
