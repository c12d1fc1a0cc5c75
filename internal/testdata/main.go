package testdata

import (
	"git.lost.host/meutraa/etude/internal/game"
	"git.lost.host/meutraa/etude/internal/parser"
)

// GetChart parses the embedded simfile below: two tempo segments and
// three measures at mixed subdivisions, with a hold, a mine, a lift and
// a fake spread over the columns.
func GetChart() *game.Chart {
	p := parser.DefaultParser{}
	return p.ParseData(data)
}

const data = `#TITLE:Etude;
#ARTIST:nobody;
#OFFSET:-0.500;
#BPMS:0.000=120.000,
2.000=240.000;
#NOTES:
     dance-single:
     :
     Beginner:
     1:
     0.1,0.2,0.3,0.4,0.5:
1000
0100
0010
0001
,
2000
0000
0M00
0000
3000
0000
00L0
000F
,
1111
,
;
`
