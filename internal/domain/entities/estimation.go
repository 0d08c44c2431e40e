package entities

// EstimationInput holds the structural parameters of a bridge cost
// estimation, with the exact JSON field names of the backend contract
// (mixed-case ones included).
//
// Field constraints:
//   - total_Width / total_Length >= 2.0 meters
//   - number_of_Spans >= 1
//   - year within [1900, 2100]
//   - structureType / abutmentType must belong to the fixed catalogs below
type EstimationInput struct {
	StructureType string  `json:"structureType" validate:"required,structure_type"`
	AbutmentType  string  `json:"abutmentType" validate:"required,abutment_type"`
	TotalWidth    float64 `json:"total_Width" validate:"gte=2"`
	NumberOfSpans int     `json:"number_of_Spans" validate:"gte=1"`
	TotalLength   float64 `json:"total_Length" validate:"gte=2"`
	Year          int     `json:"year" validate:"gte=1900,lte=2100"`
}

// EstimationProject is an estimation record with the nested input_list of the
// backend representation flattened into top-level fields.
type EstimationProject struct {
	ID int64 `json:"id"`
	EstimationInput
	TotalCost float64 `json:"total_Cost"`
}

// StructureTypes is the superstructure catalog accepted by the prediction
// model. The values are model vocabulary, not display strings.
var StructureTypes = []string{
	"adjacent box beams",
	"adjacent slab beams",
	"arch",
	"bulb tee",
	"channel beam",
	"concrete segmental box girder",
	"culvert",
	"deck arches",
	"i-beams",
	"inverset",
	"multi girder curved",
	"multi girder straight",
	"next beam",
	"next beam type d",
	"next beam type f",
	"precast box culvert",
	"prestressed adjacent box beams",
	"prestressed adjacent slab beams",
	"prestressed bulb tees",
	"prestressed I-beams",
	"prestressed spread box beams",
	"segmental box girder",
	"spread box beams",
	"steel multi girder straight",
	"steel segmental box girder",
	"three sided frame",
	"through girder",
	"through truss",
	"truss",
}

// AbutmentTypes is the abutment catalog accepted by the prediction model.
var AbutmentTypes = []string{
	"abutmentless",
	"cantilever stems",
	"culvert",
	"existing",
	"footing only",
	"integral",
	"integral & gravity",
	"invert slab",
	"other",
	"semi-integral",
	"short stem",
	"solid cantilever",
	"stem",
	"stub cantilever",
	"stub on msess wall",
}

func IsValidStructureType(v string) bool {
	for _, s := range StructureTypes {
		if s == v {
			return true
		}
	}
	return false
}

func IsValidAbutmentType(v string) bool {
	for _, a := range AbutmentTypes {
		if a == v {
			return true
		}
	}
	return false
}
