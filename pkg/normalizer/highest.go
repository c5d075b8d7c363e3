package normalizer

import "github.com/mjmoore-dev/dbnormalizer/pkg/model"

// NoForm is returned by HighestForm when t does not even satisfy 1NF.
const NoForm Level = 0

// HighestForm implements §4.5.9: the highest level N such that every
// detection function through N returns empty, without modifying t. Each
// detection function is evaluated directly against t and deps as given;
// unlike Normalize, no decomposition is performed between levels, so this
// reports what t already satisfies rather than what it could be brought
// to.
func HighestForm(t *model.Table, deps *model.DependencyManager) Level {
	needsKey, needsNonNull := detect1NF(t)
	if needsKey || needsNonNull {
		return NoForm
	}

	if len(partialDependencies(t, deps)) > 0 {
		return OneNF
	}
	if len(transitiveDependencies(t, deps)) > 0 {
		return TwoNF
	}
	if len(bcnfViolations(t, deps)) > 0 {
		return ThreeNF
	}
	if len(multiValuedDependencies(t, deps)) > 0 {
		return BCNF
	}
	if len(joinDependencies(t, deps)) > 0 {
		return FourNF
	}
	return FiveNF
}
