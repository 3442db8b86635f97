package block

import "fmt"

// GroupType is the 4-bit group-type tag carried in the high nibble of
// Block 2, values 0..15.
type GroupType uint8

// GroupVariant selects between the A and B layout of a group type.
type GroupVariant uint8

const (
	VariantA GroupVariant = iota
	VariantB
)

// VariantOf maps the Block 2 variant bit to a GroupVariant: 0 is A, 1 is B.
func VariantOf(bit bool) GroupVariant {
	if bit {
		return VariantB
	}
	return VariantA
}

// String implements fmt.Stringer.
func (v GroupVariant) String() string {
	switch v {
	case VariantA:
		return "A"
	case VariantB:
		return "B"
	default:
		return fmt.Sprintf("GroupVariant(%d)", uint8(v))
	}
}

// String implements fmt.Stringer, formatting the type as its decimal
// number, e.g. "2". The A/B variant is not part of a GroupType; see
// GroupVariant.
func (gt GroupType) String() string {
	return fmt.Sprintf("%d", uint8(gt))
}

// ProgrammeType is the 5-bit genre code carried in Block 2, values
// 0..31. Names follow Annex of the RDS/RBDS standard (the RBDS set
// differs slightly from the European RDS set past code 23; this
// module uses the RDS naming since spec.md does not distinguish the
// two regional variants).
type ProgrammeType uint8

//go:generate stringer -type ProgrammeType -output groups_string.go groups.go

const (
	PTYNone ProgrammeType = iota
	PTYNews
	PTYCurrentAffairs
	PTYInformation
	PTYSport
	PTYEducation
	PTYDrama
	PTYCulture
	PTYScience
	PTYVaried
	PTYPop
	PTYRock
	PTYEasyListening
	PTYLightClassical
	PTYSeriousClassical
	PTYOtherMusic
	PTYWeather
	PTYFinance
	PTYChildrensProgrammes
	PTYSocialAffairs
	PTYReligion
	PTYPhoneIn
	PTYTravel
	PTYLeisure
	PTYJazzMusic
	PTYCountryMusic
	PTYNationalMusic
	PTYOldiesMusic
	PTYFolkMusic
	PTYDocumentary
	PTYAlarmTest
	PTYAlarm
)

var ptyNames = [...]string{
	PTYNone:                "None",
	PTYNews:                "News",
	PTYCurrentAffairs:      "CurrentAffairs",
	PTYInformation:         "Information",
	PTYSport:               "Sport",
	PTYEducation:           "Education",
	PTYDrama:               "Drama",
	PTYCulture:             "Culture",
	PTYScience:             "Science",
	PTYVaried:              "Varied",
	PTYPop:                 "Pop",
	PTYRock:                "Rock",
	PTYEasyListening:       "EasyListening",
	PTYLightClassical:      "LightClassical",
	PTYSeriousClassical:    "SeriousClassical",
	PTYOtherMusic:          "OtherMusic",
	PTYWeather:             "Weather",
	PTYFinance:             "Finance",
	PTYChildrensProgrammes: "ChildrensProgrammes",
	PTYSocialAffairs:       "SocialAffairs",
	PTYReligion:            "Religion",
	PTYPhoneIn:             "PhoneIn",
	PTYTravel:              "Travel",
	PTYLeisure:             "Leisure",
	PTYJazzMusic:           "JazzMusic",
	PTYCountryMusic:        "CountryMusic",
	PTYNationalMusic:       "NationalMusic",
	PTYOldiesMusic:         "OldiesMusic",
	PTYFolkMusic:           "FolkMusic",
	PTYDocumentary:         "Documentary",
	PTYAlarmTest:           "AlarmTest",
	PTYAlarm:               "Alarm",
}

// String implements fmt.Stringer.
func (p ProgrammeType) String() string {
	if int(p) < len(ptyNames) {
		return ptyNames[p]
	}
	return fmt.Sprintf("ProgrammeType(%d)", uint8(p))
}
