package charset

// 常见繁体字表，与简体写法不同的那部分
const chtChars = "愛礙罷擺敗頒辦絆幫綁寶報貝備筆畢幣閉邊編變標錶別賓餅撥補" +
	"貝車長門馬鳥語國學數樂為這來時間東陳風雲電頭題顏飛魚黃點龍齊書會與" +
	"傳傷價優億儀們個義烏喬習鄉買亂爭虧產親倫偉側偵傑傘債傾僅兒兩內冊" +
	"寫軍農馮衝決況涼淨湊凱擊劃劉則剛創劇劍勁動務勝勞勢匯區醫華協單賣" +
	"盧衛廠歷壓廳參雙發號嘆後嚇呂聽員問啟喚嗎嘗噴嚴園圍圖團壞塊堅壇場" +
	"塵墮聲處複夠夢夥奪獎婦媽嬌孫寧實寬審對導將爾層屬歲豈峽島嶺師帶幹" +
	"廣慶廢開異棄張彈強歸當錄憶懷憂戀態總惡慣願戰戲戶執擴掃揚換據擔無" +
	"舊曉極構樣橋機權條殺氣漢滿濟淚潤灣燈爛熱獨獻現環畫療盜眾確禮萬種" +
	"稱穩窩競築簡籃類紅純紙級紛細終結絕統經綠網緊線緣縣績續縱罰羅聞聯" +
	"聰肅臉膽臨興舉艱節蘭藝藥蘇蟲術見規視覺觀計訊記許訴詞試詩話該認誤" +
	"說誰課調談請論謝識譯議護讀豐負財貢責費資賽質趕輕較輝輪轉辭達過運" +
	"還進遠違選遺鄭釋裡裏針錢鋼鐵銀錯鎮鏡鐘閃關陽陰際隨隱難雖離靈靜韓" +
	"響頁頂順須預領顆顯飄飯飲餓館驚騎驗體髮鬥麗麥黨齒"

// Jianfan counts traditional-Chinese characters, used to tell 繁体
// lyrics apart from 简体 ones.
type Jianfan struct {
	cht map[rune]struct{}
}

func NewJianfan() *Jianfan {
	j := &Jianfan{cht: make(map[rune]struct{})}
	for _, r := range chtChars {
		j.cht[r] = struct{}{}
	}
	return j
}

func (j *Jianfan) CountCht(s string) int {
	count := 0
	for _, r := range s {
		if _, ok := j.cht[r]; ok {
			count++
		}
	}
	return count
}
