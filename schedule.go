package trimesh

import "fmt"

// Schedule runs the plan over the mesh. Each step performs Repeat passes at
// its threshold; a pass marks the cells darker than the threshold and refines
// them. The plan is validated before any pass runs.
func Schedule(m *Mesh, field *IntensityField, p Partition, plan RefinementPlan) (*Mesh, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	log := Logger()

	for step, s := range plan {
		for pass := 0; pass < s.Repeat; pass++ {
			marked, err := Mark(m, field, p, s.Threshold)
			if err != nil {
				return nil, fmt.Errorf("step %d pass %d: %w", step, pass, err)
			}
			refined, err := Refine(m, marked)
			if err != nil {
				return nil, fmt.Errorf("step %d pass %d: %w", step, pass, err)
			}
			log.Debug("refinement pass",
				"threshold", s.Threshold,
				"step", step,
				"pass", pass,
				"marked", len(marked),
				"cells", refined.NumCells(),
				"vertices", refined.NumVertices(),
			)
			m = refined
		}
	}
	return m, nil
}
