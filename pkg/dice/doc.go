// Package dice simulates an n-sided die and reports how often each face
// comes up over many rolls.
//
// A Die starts with face 1 on top. Roll picks a new top face uniformly from
// 1..Sides:
//
//	d, err := dice.New(6)
//	if err != nil {
//	    return err // *errkind.ArgumentError for sides <= 1
//	}
//	top := d.Roll()
//
// A Simulator rolls a die many times, tracing the run through pkg/tracelog,
// and returns a Report that can be rendered as a text table or YAML:
//
//	sim := dice.NewSimulator(dice.WithLogger(log))
//	rep, err := sim.Run(ctx, d, dice.DefaultRolls)
//	if err != nil {
//	    return err
//	}
//	err = rep.WriteFile(dice.DefaultReportPath, dice.FormatText)
//
// A Die is not safe for concurrent use; a Simulator is.
package dice
