// Package colorconstancy removes the color cast of an image by estimating
// the scene illuminant and rescaling channels as if lit by neutral white.
//
// The estimator is the Minkowski p-norm (p=3) of the Grey-Edge family,
// computed after gamma linearization. It is a single pure transform over an
// 8-bit RGB buffer, useful as a normalization step before image analysis
// where consistent color matters.
package colorconstancy
