package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudent(t *testing.T) {
	tests := []struct {
		name        string
		programType string
		partner     string
		want        Classification
		ok          bool
	}{
		{"virtual partner", "41", "AP", Classification{"Student_ap", "CVLA"}, true},
		{"virtual partner lower", "42", "ap", Classification{"Student_ap", "CVLA"}, true},
		{"virtual default", "41", "BS", Classification{"Student_fa", "CVFA"}, true},
		{"virtual no partner", "41", "", Classification{"Student_fa", "CVFA"}, true},
		{"undergrad", "10", "AP", Classification{"Student_pr", "CVPR"}, true},
		{"postgrad", "21", "", Classification{"Student_pr", "CVPR"}, true},
		{"continuing ed", "50", "", Classification{"Student_ex", "CVFC"}, true},
		{"technical", "37", "", Classification{"Student_te", "CVTE"}, true},
		{"unmapped", "99", "AP", Classification{}, false},
		{"empty", "", "", Classification{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Student(tt.programType, tt.partner)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgramType(t *testing.T) {
	assert.Equal(t, "41", ProgramType("202541"))
	assert.Equal(t, "10", ProgramType(" 202510 "))
	assert.Equal(t, "7", ProgramType("7"))
	assert.Equal(t, "", ProgramType(""))
}

func TestModerator(t *testing.T) {
	assert.Equal(t, Classification{Role: "Moderador", OrgUnit: "UPBV"}, Moderator())
}

func TestVacateUnit(t *testing.T) {
	tests := map[string]string{
		"150":   "CVTE",
		"143":   "CVLA",
		"138":   "CVPR",
		"137":   "CVFC",
		"136.0": "CVFA",
		"135":   "CVFA",
	}
	for in, want := range tests {
		got, ok := VacateUnit(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := VacateUnit("109")
	assert.False(t, ok)
	_, ok = VacateUnit("nan")
	assert.False(t, ok)
}
