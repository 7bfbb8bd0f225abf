package spectrum

// CIE 2006 2-degree colour matching functions and the D65 illuminant, tabulated in 5nm buckets.

var cieX = &Dense{
	SrcX: 390,
	LimX: 835,
	Samples: []float64{
		0.003769647, 0.009382967, 0.02214302, 0.04742986, 0.08953803,
		0.1446214, 0.2035729, 0.2488523, 0.2918246, 0.3227087,
		0.3482554, 0.3418483, 0.3224637, 0.2826646, 0.2485254,
		0.2219781, 0.1806905, 0.129192, 0.08182895, 0.04600865,
		0.02083981, 0.007097731, 0.002461588, 0.003649178, 0.01556989,
		0.04315171, 0.07962917, 0.1268468, 0.1818026, 0.2405015,
		0.3098117, 0.3804244, 0.4494206, 0.5280233, 0.6133784,
		0.7016774, 0.796775, 0.8853376, 0.9638388, 1.051011,
		1.109767, 1.14362, 1.151033, 1.134757, 1.083928,
		1.007344, 0.9142877, 0.8135565, 0.6924717, 0.575541,
		0.4731224, 0.3844986, 0.2997374, 0.2277792, 0.1707914,
		0.1263808, 0.09224597, 0.0663996, 0.04710606, 0.03292138,
		0.02262306, 0.01575417, 0.01096778, 0.00760875, 0.005214608,
		0.003569452, 0.002464821, 0.001703876, 0.001186238, 0.0008269535,
		0.0005758303, 0.0004058303, 0.0002856577, 0.0002021853, 0.000143827,
		0.0001024685, 7.347551e-005, 5.25987e-005, 3.806114e-005, 2.758222e-005,
		2.004122e-005, 1.458792e-005, 1.068141e-005, 7.857521e-006, 5.768284e-006,
		4.259166e-006, 3.167765e-006, 2.358723e-006, 1.762465e-006,
	},
}

var cieY = &Dense{
	SrcX: 390,
	LimX: 835,
	Samples: []float64{
		0.0004146161, 0.001059646, 0.002452194, 0.004971717, 0.00907986,
		0.01429377, 0.02027369, 0.02612106, 0.03319038, 0.0415794,
		0.05033657, 0.05743393, 0.06472352, 0.07238339, 0.08514816,
		0.1060145, 0.1298957, 0.1535066, 0.1788048, 0.2064828,
		0.237916, 0.285068, 0.3483536, 0.4277595, 0.5204972,
		0.6206256, 0.718089, 0.7946448, 0.8575799, 0.9071347,
		0.9544675, 0.9814106, 0.9890228, 0.9994608, 0.9967737,
		0.9902549, 0.9732611, 0.9424569, 0.8963613, 0.8587203,
		0.8115868, 0.7544785, 0.6918553, 0.6270066, 0.5583746,
		0.489595, 0.4229897, 0.3609245, 0.2980865, 0.2416902,
		0.1943124, 0.1547397, 0.119312, 0.08979594, 0.06671045,
		0.04899699, 0.03559982, 0.02554223, 0.01807939, 0.01261573,
		0.008661284, 0.006027677, 0.004195941, 0.002910864, 0.001995557,
		0.001367022, 0.0009447269, 0.000653705, 0.000455597, 0.0003179738,
		0.0002217445, 0.0001565566, 0.0001103928, 7.827442e-005, 5.578862e-005,
		3.981884e-005, 2.860175e-005, 2.051259e-005, 1.487243e-005, 0.0000108,
		7.86392e-006, 5.736935e-006, 4.211597e-006, 3.106561e-006, 2.286786e-006,
		1.693147e-006, 1.262556e-006, 9.422514e-007, 7.05386e-007,
	},
}

var cieZ = &Dense{
	SrcX: 390,
	LimX: 835,
	Samples: []float64{
		0.0184726, 0.04609784, 0.109609, 0.2369246, 0.4508369,
		0.7378822, 1.051821, 1.305008, 1.552826, 1.74828,
		1.917479, 1.918437, 1.848545, 1.664439, 1.522157,
		1.42844, 1.25061, 0.9991789, 0.7552379, 0.5617313,
		0.4099313, 0.3105939, 0.2376753, 0.1720018, 0.1176796,
		0.08283548, 0.05650407, 0.03751912, 0.02438164, 0.01566174,
		0.00984647, 0.006131421, 0.003790291, 0.002327186, 0.001432128,
		0.0008822531, 0.0005452416, 0.0003386739, 0.0002117772, 0.0001335031,
		8.494468e-005, 5.460706e-005, 3.549661e-005, 2.334738e-005, 1.554631e-005,
		1.048387e-005, 0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0,
	},
}

var stdIlluminantD65 = &Dense{
	SrcX: 300,
	LimX: 835,
	Samples: []float64{
		0.034100, 1.664300, 3.294500, 11.765200, 20.236000, 28.644700,
		37.053500, 38.501100, 39.948800, 42.430200, 44.911700, 45.775000,
		46.638300, 49.363700, 52.089100, 51.032300, 49.975500, 52.311800,
		54.648200, 68.701500, 82.754900, 87.120400, 91.486000, 92.458900,
		93.431800, 90.057000, 86.682300, 95.773600, 104.865000, 110.936000,
		117.008000, 117.410000, 117.812000, 116.336000, 114.861000, 115.392000,
		115.923000, 112.367000, 108.811000, 109.082000, 109.354000, 108.578000,
		107.802000, 106.296000, 104.790000, 106.239000, 107.689000, 106.047000,
		104.405000, 104.225000, 104.046000, 102.023000, 100.000000, 98.167100,
		96.334200, 96.061100, 95.788000, 92.236800, 88.685600, 89.345900,
		90.006200, 89.802600, 89.599100, 88.648900, 87.698700, 85.493600,
		83.288600, 83.493900, 83.699200, 81.863000, 80.026800, 80.120700,
		80.214600, 81.246200, 82.277800, 80.281000, 78.284200, 74.002700,
		69.721300, 70.665200, 71.609100, 72.979000, 74.349000, 67.976500,
		61.604000, 65.744800, 69.885600, 72.486300, 75.087000, 69.339800,
		63.592700, 55.005400, 46.418200, 56.611800, 66.805400, 65.094100,
		63.382800, 63.843400, 64.304000, 61.877900, 59.451900, 55.705400,
		51.959000, 54.699800, 57.440600, 58.876500, 60.312500,
	},
}
