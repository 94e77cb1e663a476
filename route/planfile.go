// route/planfile.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"encoding/json"
	"fmt"

	"github.com/brunoga/deep"

	"github.com/mmp/turnpath/util"
)

// PlanFile is the JSON layout of a file of plans. Each entry in Plans
// starts out as a copy of Defaults, if given, and the fields it specifies
// override the defaults.
type PlanFile struct {
	Defaults *Plan `json:"defaults,omitempty"`
	Plans    []Plan `json:"plans"`
}

// LoadPlans decodes and validates the contents of a plan file. Errors are
// reported to e; the plans decoded are returned regardless, so callers
// should check e.HaveErrors().
func LoadPlans(contents []byte, e *util.ErrorLogger) []Plan {
	defer e.CheckDepth(e.CurrentDepth())

	util.CheckJSON[PlanFile](contents, e)
	if e.HaveErrors() {
		return nil
	}

	var pf struct {
		Defaults *Plan            `json:"defaults"`
		Plans    []json.RawMessage `json:"plans"`
	}
	if err := util.UnmarshalJSONBytes(contents, &pf); err != nil {
		e.Error(err)
		return nil
	}
	if len(pf.Plans) == 0 {
		e.ErrorString("no \"plans\" specified")
		return nil
	}

	var plans []Plan
	names := make(map[string]int)
	for i, raw := range pf.Plans {
		var p Plan
		if pf.Defaults != nil {
			// Decoding into the copy reuses its Legs slice, so each plan
			// needs its own.
			p = deep.MustCopy(*pf.Defaults)
		}
		if err := util.UnmarshalJSONBytes(raw, &p); err != nil {
			e.Push(fmt.Sprintf("Plan %d", i))
			e.Error(err)
			e.Pop()
			continue
		}

		if p.Name == "" {
			p.Name = fmt.Sprintf("plan-%d", i)
		}
		if j, ok := names[p.Name]; ok {
			e.ErrorString("plan name %q is used by both plan %d and plan %d", p.Name, j, i)
		}
		names[p.Name] = i

		p.Check(e)
		plans = append(plans, p)
	}
	return plans
}
