/*
Package puzzle defines the types shared by solvers, the registry and the
runner: the Day identifier, the Answer a solver produces, the Solver
signature, and the lifecycle hooks fired around each solve.
*/
package puzzle
