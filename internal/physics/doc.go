// Package physics models wafer slip on a spinning vacuum chuck.
//
// The model is an instantaneous force balance: the vacuum clamps the
// wafer to the chuck with a friction force mu*P*A while spindle
// acceleration pulls it tangentially with m*r*alpha. [Compute] reports
// the ratio of the two as a slip factor, the acceleration at which the
// ratio reaches unity, and whether the configured safety margin has
// been crossed.
//
// Wafer mass and radius are fixed per [WaferType]; the chuck contact
// patch [ChuckArea] is a hardware constant independent of wafer type.
package physics
