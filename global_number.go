package main

// 掃引の最小レイノルズ数
func getReMin() float64 {
	return 1e4
}

// 掃引の最大レイノルズ数
func getReMax() float64 {
	return 1e6
}

// 掃引の点数
func getSweepPoints() int {
	return 50
}

// 掃引のプラントル数, 超臨界水の擬臨界点近傍の代表値
func getSweepPr() float64 {
	return 1.2
}
