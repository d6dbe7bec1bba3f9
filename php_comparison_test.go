package mtrand_test

import (
	"fmt"
	"testing"

	"github.com/nozzle/mtrand"
)

// Reference output of PHP's example scripts:
//
//	mt_srand(0, $mode); for ($i = 0; $i < 100; $i++) print mt_rand() . "\n";
//	mt_srand(0, $mode); for ($i = 0; $i < 100; $i++) print mt_rand(0, mt_getrandmax()) . "\n";
//
// In legacy mode mt_rand(0, mt_getrandmax()) scales by exactly one and
// matches mt_rand().

var phpSeed0MT19937 = []int64{
	1178568022, 1273124119, 1535857466, 1813046880, 1294424481, 1842424189,
	1170127713, 1819459251, 909791748, 1339092841, 1387047050, 825453433,
	939711378, 638950699, 1915067939, 121790188, 2069450028, 585524934,
	823434397, 1025778016, 1700216563, 1744119059, 1135793195, 1030743127,
	1219866412, 843498920, 1987703634, 1795465484, 152548774, 724552740,
	187108740, 1391938506, 43418681, 790792680, 1788037497, 2055475042,
	1671078911, 301400999, 1868336855, 1868498144, 2101566889, 1017065521,
	1716179948, 1719942744, 991019385, 1117716878, 1676173641, 1457882697,
	253992391, 1547546835, 1374219920, 1249877984, 307848836, 1154000220,
	2028661055, 1629114640, 1120660751, 227434853, 890479738, 1017049163,
	568128849, 400145663, 1662654181, 1582519737, 979575387, 465038350,
	1220702609, 290378816, 40350784, 696087506, 1326362138, 321424322,
	1314465555, 477431540, 1324855674, 829978760, 2026683559, 1938315458,
	1464197940, 966260245, 772037341, 1316543759, 938518972, 1937778816,
	1498151584, 213202931, 129333204, 2082649116, 1431870609, 1402607539,
	1440183867, 367025541, 451793111, 769125929, 276867117, 1612086208,
	677377223, 1305306417, 781062938, 698033606,
}

var phpSeed0MT19937Range = []int64{
	209652396, 398764591, 924231285, 1478610112, 441365315, 1537364731,
	192771779, 1491434855, 1819583497, 530702035, 626610453, 1650906866,
	1879422756, 1277901399, 1682652230, 243580376, 1991416408, 1171049868,
	1646868794, 2051556033, 1252949478, 1340754471, 124102743, 2061486254,
	292249176, 1686997841, 1827923621, 1443447321, 305097549, 1449105480,
	374217481, 636393364, 86837363, 1581585360, 1428591347, 1963466437,
	1194674174, 602801999, 1589190063, 1589512640, 2055650130, 2034131043,
	1284876248, 1292401841, 1982038771, 87950109, 1204863635, 768281747,
	507984782, 947610023, 600956192, 352272321, 615697673, 160516793,
	1909838463, 1110745632, 93837855, 454869706, 1780959476, 2034098327,
	1136257699, 800291326, 1177824715, 1017555826, 1959150775, 930076700,
	293921570, 580757632, 80701568, 1392175012, 505240629, 642848645,
	481447462, 954863080, 502227700, 1659957521, 1905883471, 1729147268,
	780912233, 1932520490, 1544074682, 485603871, 1877037944, 1728073985,
	848819521, 426405863, 258666409, 2017814585, 716257571, 657731430,
	732884087, 734051083, 903586222, 1538251858, 553734235, 1076688768,
	1354754446, 463129187, 1562125877, 1396067212,
}

var phpSeed0Legacy = []int64{
	963932192, 1273124119, 1535857466, 324735766, 1294424481, 1842424189,
	1170127713, 1819459251, 909791748, 1339092841, 770137596, 1316527631,
	1195978468, 638950699, 225340245, 121790188, 68335706, 1571656624,
	1314875883, 1025778016, 1700216563, 1744119059, 1135793195, 1109659937,
	1219866412, 843498920, 154273316, 1795465484, 1985757392, 724552740,
	1953298674, 767344316, 2111664463, 1349090462, 366525455, 97516052,
	483481225, 1857877713, 269974433, 269808022, 34121951, 1138017607,
	1716179948, 1719942744, 991019385, 1037366520, 480482367, 699298623,
	253992391, 594953637, 782441446, 892627606, 307848836, 998461482,
	127999049, 508666982, 1120660751, 227434853, 890479738, 1138033981,
	568128849, 1754417545, 1662654181, 555262159, 1160304429, 1694243192,
	931759335, 290378816, 40350784, 1446413988, 809851756, 321424322,
	823317093, 1665069954, 1324855674, 829978760, 2026683559, 1938315458,
	1464197940, 966260245, 772037341, 825436281, 1220238538, 214687222,
	1498151584, 1946075781, 129333204, 57229674, 1431870609, 751952581,
	714900301, 367025541, 1705387425, 1385962335, 1875598683, 526225078,
	677377223, 847679559, 781062938, 1456525488,
}

func TestRandVsPHP(t *testing.T) {
	tests := []struct {
		name     string
		mode     mtrand.Mode
		expected []int64
	}{
		{"MT_RAND_MT19937", mtrand.CorrectTwister, phpSeed0MT19937},
		{"MT_RAND_PHP", mtrand.LegacyPHPTwister, phpSeed0Legacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := mtrand.NewSeeded(0, tt.mode)
			if err != nil {
				t.Fatal(err)
			}

			mismatches := 0
			for i, exp := range tt.expected {
				got := g.Rand()
				if got != exp {
					mismatches++
					t.Errorf("Value %d: got %d, expected %d", i, got, exp)
				}
			}
			fmt.Printf("%s: %d/%d values match PHP\n", tt.name, len(tt.expected)-mismatches, len(tt.expected))
		})
	}
}

func TestRangeVsPHP(t *testing.T) {
	tests := []struct {
		name     string
		mode     mtrand.Mode
		expected []int64
	}{
		{"MT_RAND_MT19937", mtrand.CorrectTwister, phpSeed0MT19937Range},
		{"MT_RAND_PHP", mtrand.LegacyPHPTwister, phpSeed0Legacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := mtrand.NewSeeded(0, tt.mode)
			if err != nil {
				t.Fatal(err)
			}

			for i, exp := range tt.expected {
				got, err := g.Range(0, mtrand.MaxValue())
				if err != nil {
					t.Fatal(err)
				}
				if got != exp {
					t.Errorf("Value %d: got %d, expected %d", i, got, exp)
				}
			}
		})
	}
}
