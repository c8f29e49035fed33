package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatePart(t *testing.T) {
	tests := []struct {
		in    string
		year  int
		month time.Month
		nilOK bool
	}{
		{in: "May 2010", year: 2010, month: time.May},
		{in: "Apr 2014", year: 2014, month: time.April},
		{in: "December 2021", year: 2021, month: time.December},
		{in: "2014", year: 2014, month: time.January},
		{in: " 2021 ", year: 2021, month: time.January},
		{in: "Present", nilOK: true},
		{in: "garbage", nilOK: true},
		{in: "", nilOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseDatePart(tt.in)
			if tt.nilOK {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.year, got.Year())
			assert.Equal(t, tt.month, got.Month())
		})
	}
}

func TestParseDateRange(t *testing.T) {
	t.Run("month-year pair with duration", func(t *testing.T) {
		start, end, current, ok := ParseDateRange("May 2010 - April 2014 (4 years)")
		require.True(t, ok)
		require.NotNil(t, start)
		require.NotNil(t, end)
		assert.Equal(t, 2010, start.Year())
		assert.Equal(t, 2014, end.Year())
		assert.False(t, current)
	})

	t.Run("bare years", func(t *testing.T) {
		start, end, current, ok := ParseDateRange("2014 - 2021")
		require.True(t, ok)
		assert.Equal(t, 2014, start.Year())
		assert.Equal(t, 2021, end.Year())
		assert.False(t, current)
	})

	t.Run("present end", func(t *testing.T) {
		start, end, current, ok := ParseDateRange("Aug 2019 - Present")
		require.True(t, ok)
		assert.Equal(t, 2019, start.Year())
		assert.Nil(t, end)
		assert.True(t, current)
	})

	t.Run("en dash", func(t *testing.T) {
		start, end, _, ok := ParseDateRange("May 2010 – April 2014")
		require.True(t, ok)
		assert.NotNil(t, start)
		assert.NotNil(t, end)
	})

	t.Run("lone start date", func(t *testing.T) {
		start, end, current, ok := ParseDateRange("2014")
		require.True(t, ok)
		assert.Equal(t, 2014, start.Year())
		assert.Nil(t, end)
		assert.False(t, current)
	})

	t.Run("not a date", func(t *testing.T) {
		_, _, _, ok := ParseDateRange("Berlin, Germany")
		assert.False(t, ok)
	})

	t.Run("hyphenated name is not a range", func(t *testing.T) {
		_, _, _, ok := ParseDateRange("Alice Johnson-Smith")
		assert.False(t, ok)
	})
}

func TestParseDegree(t *testing.T) {
	t.Run("degree with date pair", func(t *testing.T) {
		degree, start, end := ParseDegree("Bachelor of Science, Biochemistry · (August 2016 - December 2021)")
		assert.Equal(t, "Bachelor of Science, Biochemistry", degree)
		require.NotNil(t, start)
		require.NotNil(t, end)
		assert.Equal(t, 2016, start.Year())
		assert.Equal(t, 2021, end.Year())
	})

	t.Run("bullet separator", func(t *testing.T) {
		degree, start, end := ParseDegree("MSc Physics • (2014 - 2016)")
		assert.Equal(t, "MSc Physics", degree)
		require.NotNil(t, start)
		require.NotNil(t, end)
	})

	t.Run("no date part", func(t *testing.T) {
		degree, start, end := ParseDegree("High School Diploma")
		assert.Equal(t, "High School Diploma", degree)
		assert.Nil(t, start)
		assert.Nil(t, end)
	})
}

func TestIsDateLine(t *testing.T) {
	assert.True(t, isDateLine("May 2010 - April 2014 (4 years)"))
	assert.True(t, isDateLine("2021"))
	assert.False(t, isDateLine("Alice Johnson"))
	assert.False(t, isDateLine("Experience"))
}
