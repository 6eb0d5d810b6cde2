package main

// @title           AgNP Simulation API
// @version         1.0
// @description     Dose-response and dye degradation simulation for silver nanoparticle assays.
// @BasePath        /
func main() {
	Execute()
}
