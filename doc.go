// Package dotplot draws one-dimensional data as a dotplot.
//
//
// Stacks
//
// A dotplot groups the observations of a dataset into stacks. Each stack
// is anchored at a key on the x-axis and every observation is drawn as
// one dot on top of the previous dots of its stack:
//
//          o
//          o     o
//    o     o     o           o
//    o     o     o     o     o
//   -+-----+-----+-----+-----+-
//    1    2.25  3.5  4.75    6
//
// By default the keys are evenly spaced between the minimum and the
// maximum of the data (see Keys). An observation x belongs to the stack
// of the largest key k with k <= x. The top stack is closed: the maximum
// of the data always lands in the last stack.
//
//
// Pipeline
//
// Drawing happens in three pure steps and one side effect:
//     keys   := Keys(data, n)         // boundary keys
//     stacks := Bin(data, n, keys)    // observation to stack
//     points := Points(stacks)        // (key, height) pairs
//     geom.Draw(data, opts)           // render and save the image
// Compute runs the three steps at once and adds the x scale.
//
//
// Data
//
// Datasets are plain float64 slices. NewDataset extracts one from a
// slice of numbers or from a field (or niladic method) of a slice of
// structs:
//    type Measurement struct {
//        Height float64
//        Weight float64
//    }
//    func (m Measurement) BMI() float64 { return m.Weight / (m.Height * m.Height) }
//
//    ds, err := dotplot.NewDataset(measurements, "BMI")
//
package dotplot
