package universities

import "slices"

// Region is one of the 17 administrative regions, 해외 (overseas), or 기타 (unknown).
type Region string

// Establishment is the founding body of an institution.
type Establishment string

// SchoolLevel is the coarse classification (Level 1).
type SchoolLevel string

// SchoolType is the fine-grained institutional type (Level 2).
type SchoolType string

// Regions.
const (
	RegionSeoul     Region = "서울특별시"
	RegionBusan     Region = "부산광역시"
	RegionDaegu     Region = "대구광역시"
	RegionIncheon   Region = "인천광역시"
	RegionGwangju   Region = "광주광역시"
	RegionDaejeon   Region = "대전광역시"
	RegionUlsan     Region = "울산광역시"
	RegionSejong    Region = "세종특별자치시"
	RegionGyeonggi  Region = "경기도"
	RegionGangwon   Region = "강원특별자치도"
	RegionChungbuk  Region = "충청북도"
	RegionChungnam  Region = "충청남도"
	RegionJeonbuk   Region = "전북특별자치도"
	RegionJeonnam   Region = "전라남도"
	RegionGyeongbuk Region = "경상북도"
	RegionGyeongnam Region = "경상남도"
	RegionJeju      Region = "제주특별자치도"
	RegionOverseas  Region = "해외"
	RegionUnknown   Region = "기타"
)

// Establishments.
const (
	EstablishmentNational Establishment = "국립"
	EstablishmentPublic   Establishment = "공립"
	EstablishmentPrivate  Establishment = "사립"
	EstablishmentUnknown  Establishment = "기타"
)

// School levels.
const (
	LevelUniversity SchoolLevel = "대학(4년제)"
	LevelCollege    SchoolLevel = "전문대학"
	LevelGraduate   SchoolLevel = "대학원대학"
)

// School types for 4-year universities.
const (
	TypeUniversity          SchoolType = "대학교"
	TypeEducation           SchoolType = "교육대학"
	TypeIndustrial          SchoolType = "산업대학"
	TypeCyberUniversity     SchoolType = "사이버대학(대학)"
	TypeMiscUniversity      SchoolType = "각종대학(대학)"
	TypeCorporateUniversity SchoolType = "사내대학(대학)"
	TypeRemoteUniversity    SchoolType = "원격대학(대학)"
	TypeTechnical           SchoolType = "기술대학"
	TypeOpenUniversity      SchoolType = "방송통신대학교"
)

// School types for junior colleges.
const (
	TypeCollege          SchoolType = "전문대학"
	TypePolytechnic      SchoolType = "기능대학"
	TypeCyberCollege     SchoolType = "사이버대학(전문)"
	TypeMajorCollege     SchoolType = "전공대학"
	TypeCorporateCollege SchoolType = "사내대학(전문)"
	TypeRemoteCollege    SchoolType = "원격대학(전문)"
)

// School types for graduate-only universities.
const (
	TypeGraduate SchoolType = "대학원대학"
)

var (
	regions = []Region{
		RegionSeoul, RegionBusan, RegionDaegu, RegionIncheon, RegionGwangju,
		RegionDaejeon, RegionUlsan, RegionSejong, RegionGyeonggi, RegionGangwon,
		RegionChungbuk, RegionChungnam, RegionJeonbuk, RegionJeonnam,
		RegionGyeongbuk, RegionGyeongnam, RegionJeju, RegionOverseas, RegionUnknown,
	}

	establishments = []Establishment{
		EstablishmentNational, EstablishmentPublic, EstablishmentPrivate, EstablishmentUnknown,
	}

	schoolLevels = []SchoolLevel{LevelUniversity, LevelCollege, LevelGraduate}

	universityTypes = []SchoolType{
		TypeUniversity, TypeEducation, TypeIndustrial, TypeCyberUniversity,
		TypeMiscUniversity, TypeCorporateUniversity, TypeRemoteUniversity,
		TypeTechnical, TypeOpenUniversity,
	}

	collegeTypes = []SchoolType{
		TypeCollege, TypePolytechnic, TypeCyberCollege, TypeMajorCollege,
		TypeCorporateCollege, TypeRemoteCollege,
	}

	graduateTypes = []SchoolType{TypeGraduate}

	// defaultTypes is the type given to records synthesized for a level.
	defaultTypes = map[SchoolLevel]SchoolType{
		LevelUniversity: TypeUniversity,
		LevelCollege:    TypeCollege,
		LevelGraduate:   TypeGraduate,
	}
)

// Regions returns every region in display order.
func Regions() []Region {
	return slices.Clone(regions)
}

// Establishments returns every establishment kind.
func Establishments() []Establishment {
	return slices.Clone(establishments)
}

// SchoolLevels returns the three level buckets in processing order.
func SchoolLevels() []SchoolLevel {
	return slices.Clone(schoolLevels)
}

// SchoolTypes returns every school type across all levels.
func SchoolTypes() []SchoolType {
	all := make([]SchoolType, 0, len(universityTypes)+len(collegeTypes)+len(graduateTypes))
	all = append(all, universityTypes...)
	all = append(all, collegeTypes...)
	return append(all, graduateTypes...)
}

// TypesForLevel returns the school types allowed under level.
func TypesForLevel(level SchoolLevel) []SchoolType {
	switch level {
	case LevelUniversity:
		return slices.Clone(universityTypes)
	case LevelCollege:
		return slices.Clone(collegeTypes)
	case LevelGraduate:
		return slices.Clone(graduateTypes)
	default:
		return nil
	}
}

// DefaultType returns the type assigned to records synthesized under level.
func DefaultType(level SchoolLevel) SchoolType {
	if t, ok := defaultTypes[level]; ok {
		return t
	}
	return TypeUniversity
}

// String returns the string representation of a Region.
func (r Region) String() string { return string(r) }

// IsValid reports whether r belongs to the region vocabulary.
func (r Region) IsValid() bool { return slices.Contains(regions, r) }

// String returns the string representation of an Establishment.
func (e Establishment) String() string { return string(e) }

// IsValid reports whether e belongs to the establishment vocabulary.
func (e Establishment) IsValid() bool { return slices.Contains(establishments, e) }

// String returns the string representation of a SchoolLevel.
func (l SchoolLevel) String() string { return string(l) }

// IsValid reports whether l is one of the three level buckets.
func (l SchoolLevel) IsValid() bool { return slices.Contains(schoolLevels, l) }

// String returns the string representation of a SchoolType.
func (t SchoolType) String() string { return string(t) }

// IsValid reports whether t belongs to any level's type list.
func (t SchoolType) IsValid() bool { return slices.Contains(SchoolTypes(), t) }
