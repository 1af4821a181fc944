// Package analytics derives descriptive statistics from a fund's NAV series:
// trailing-period returns, maximum drawdown and a simplified annualized Sharpe ratio.
//
// Every function here is pure. Missing or degenerate inputs never produce an error;
// they produce a model.Metric tagged with the reason.
package analytics
