// Package analytic holds closed-form prices used as references for the
// transform pricers: the Black–Scholes–Merton formula with a continuous
// dividend yield.
package analytic
