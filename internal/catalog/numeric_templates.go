package catalog

import "fmt"

var numericTemplates = []Template{
	// Depreciation.
	{
		ID:   "numeric/building-depreciation",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("期首の建物取得原価は%s円、減価償却累計額は%s円である。耐用年数30年、残存価額ゼロ、定額法により減価償却を行う場合、当期の減価償却費はいくらか。", Yen(a*30), Yen(a*10))
		},
		Numeric:     func(a int64) int64 { return a },
		Explanation: "取得原価 ÷ 耐用年数。累計額は計算に関係ありません（定額法の場合）。",
	},
	{
		ID:   "numeric/equipment-depreciation-with-residual",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("備品（取得原価%s円、耐用年数5年、残存価額は取得原価の10%%、定額法）の第3年度の減価償却費はいくらか。", Yen(mil(a, 1200)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 216) },
		Explanation: "定額法：(取得原価 - 残存価額) ÷ 耐用年数。毎年同額です。",
	},
	{
		ID:   "numeric/vehicle-accumulated-depreciation",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("車両運搬具（取得原価%s円）を期首に購入。耐用年数6年、残存価額ゼロ、定額法の場合、第1年度末の減価償却累計額はいくらか。", Yen(mil(a, 2400)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 400) },
		Explanation: "定額法（残存価額ゼロ）：取得原価 ÷ 耐用年数。",
	},
	{
		ID:   "numeric/building-book-value",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("建物（取得原価%s円、減価償却累計額%s円）の帳簿価額（未償却残高）はいくらか。", Yen(a*36), Yen(a*12))
		},
		Numeric:     func(a int64) int64 { return a * 24 },
		Explanation: "帳簿価額 = 取得原価 - 減価償却累計額。",
	},

	// Allowance for doubtful accounts.
	{
		ID:   "numeric/allowance-difference-method",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("貸倒引当金勘定の決算整理前残高は%s円である。期末売掛金残高%s円に対し3%%の貸倒引当金を設定する場合（差額補充法）、貸倒引当金繰入の金額はいくらか。", Yen(a), Yen(a*100))
		},
		Numeric:     func(a int64) int64 { return a * 2 },
		Explanation: "設定目標額（売掛金×3%）と前残高との差額を計算します。",
	},
	{
		ID:   "numeric/allowance-receivables-and-notes",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("売掛金の期末残高%s円、受取手形の期末残高%s円に対し、2%%の貸倒引当金を設定する。貸倒引当金の前期末残高は%s円である。差額補充法の場合、当期の貸倒引当金繰入額はいくらか。", Yen(a*50), Yen(a*30), Yen(mil(a, 1200)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 400) },
		Explanation: "設定目標額 = (売掛金 + 受取手形) × 2%。繰入額 = 設定目標額 - 前期末残高。",
	},
	{
		ID:   "numeric/allowance-reversal-method",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("売掛金の期末残高%s円に対し3%%の貸倒引当金を設定する。前期末残高は%s円である。洗替法の場合、当期の貸倒引当金繰入額はいくらか。", Yen(a*40), Yen(mil(a, 1500)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 1200) },
		Explanation: "洗替法では、前期末残高を戻入し、期末に新たに全額を繰り入れます。繰入額 = 売掛金 × 3%。",
	},
	{
		ID:   "numeric/allowance-doubtful-receivables",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("売掛金%s円（貸倒懸念債権%s円を含む）の貸倒引当金を設定する。一般債権は2%%、貸倒懸念債権は50%%とする場合、貸倒引当金の設定額はいくらか。なお、前期末残高はゼロとする。", Yen(a*80), Yen(a*5))
		},
		Numeric:     func(a int64) int64 { return a * 4 },
		Explanation: "一般債権分：（総額 - 貸倒懸念債権） × 2%。貸倒懸念債権分：金額 × 50%。合計が設定額。",
	},

	// Cost of goods sold and profit.
	{
		ID:   "numeric/gross-profit",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("次のデータに基づき、売上総利益を計算せよ。売上高：%s、期首商品：%s、当期仕入：%s、期末商品：%s。", Yen(a), Yen(mil(a, 100)), Yen(mil(a, 700)), Yen(mil(a, 150)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 350) },
		Explanation: "売上総利益 ＝ 売上高 － 売上原価。売上原価 ＝ 期首 ＋ 仕入 － 期末。",
	},
	{
		ID:   "numeric/cost-of-goods-sold",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("期首商品棚卸高%s円、当期商品仕入高%s円、期末商品棚卸高%s円の場合、売上原価はいくらか。", Yen(mil(a, 800)), Yen(a*6), Yen(a))
		},
		Numeric:     func(a int64) int64 { return mil(a, 5800) },
		Explanation: "売上原価 = 期首商品 + 当期仕入 - 期末商品。",
	},
	{
		ID:   "numeric/operating-income",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("売上高%s円、売上原価%s円、販売費及び一般管理費%s円の場合、営業利益はいくらか。", Yen(a*100), Yen(a*60), Yen(a*25))
		},
		Numeric:     func(a int64) int64 { return a * 15 },
		Explanation: "営業利益 = 売上高 - 売上原価 - 販管費。",
	},
	{
		ID:   "numeric/gross-profit-from-inventory",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("売上高%s円、期首商品%s円、当期仕入%s円、期末商品%s円の場合、売上総利益はいくらか。", Yen(a*150), Yen(a*12), Yen(a*90), Yen(a*18))
		},
		Numeric:     func(a int64) int64 { return a * 66 },
		Explanation: "売上原価 = 期首商品 + 当期仕入 - 期末商品。売上総利益 = 売上高 - 売上原価。",
	},
	{
		ID:   "numeric/ordinary-income",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("売上高%s円、売上原価%s円、販管費%s円、営業外収益%s円、営業外費用%s円の場合、経常利益はいくらか。", Yen(a*200), Yen(a*120), Yen(a*50), Yen(a*5), Yen(a*3))
		},
		Numeric:     func(a int64) int64 { return a * 32 },
		Explanation: "営業利益 = 売上高 - 売上原価 - 販管費。経常利益 = 営業利益 + 営業外収益 - 営業外費用。",
	},

	// Accruals and deferrals.
	{
		ID:   "numeric/supplies-asset-method",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算整理前の消耗品勘定の残高は%s円である。期末の消耗品棚卸高が%s円であった場合、P/Lに計上される消耗品費はいくらか。なお、購入時は全額資産（消耗品）処理している。", Yen(a), Yen(mil(a, 300)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 700) },
		Explanation: "資産計上法の場合、購入額 - 期末残高 = 使用額（費用）となります。",
	},
	{
		ID:   "numeric/supplies-expense-method",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算整理前の消耗品費勘定残高は%s円、期末実地棚卸高は%s円である。購入時に全額費用処理している場合、決算整理後のP/Lに計上される消耗品費はいくらか。", Yen(mil(a, 60)), Yen(mil(a, 18)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 42) },
		Explanation: "費用処理法の場合、決算で期末残高を資産に振り替えます。P/L計上額 = 整理前残高 - 期末残高。",
	},
	{
		ID:   "numeric/supplies-expense-method-large",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算整理前の消耗品費勘定残高は%s円、期末実地棚卸高は%s円である。購入時に全額費用処理している場合、決算整理後のP/Lに計上される消耗品費はいくらか。", Yen(mil(a, 800)), Yen(mil(a, 200)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 600) },
		Explanation: "費用処理法の場合、期末残高を資産（貯蔵品）に振り替えます。P/L計上額 = 整理前残高 - 期末残高。",
	},
	{
		ID:   "numeric/land-rent-unearned-to-earned",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算整理前試算表の「前受地代」残高は%s円である（全額が当期首に受け取った1年分）。決算日が3月末で、地代の契約期間が4月1日から翌年3月31日までの場合、決算整理仕訳後の「受取地代」はいくらか。", Yen(mil(a, 60)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 60) },
		Explanation: "期首に1年分を受け取り「前受地代」（負債）としていた場合、決算ですべて経過しているため、全額を「受取地代」（収益）に振り替えます。",
	},
	{
		ID:   "numeric/rent-income-full-year",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算整理前試算表の「受取家賃」は%s円（当期4/1受取の1年分）である。決算日は3/31である。決算整理後の「受取家賃」（P/L計上額）はいくらか。", Yen(mil(a, 360)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 360) },
		Explanation: "4/1に1年分を受け取っているため、決算日3/31時点で全額が経過済みです。よって全額が当期の収益となります。",
	},
	{
		ID:   "numeric/rent-expense-accrued",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算整理前試算表の「支払家賃」は%s円（当期分9ヶ月分）である。年間家賃は%s円、決算日は3/31である。決算整理後の「支払家賃」（P/L計上額）はいくらか。", Yen(mil(a, 540)), Yen(mil(a, 720)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 720) },
		Explanation: "9ヶ月分が支払済みで、残り3ヶ月分を未払費用として見越し計上します。合計で年間家賃の全額が当期費用となります。",
	},
	{
		ID:   "numeric/prepaid-insurance-balance",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算整理前試算表の「前払保険料」は%s円（当期7/1支払、1年分）である。決算日は翌年3/31である。決算整理後の「前払保険料」（B/S計上額）はいくらか。", Yen(mil(a, 600)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 150) },
		Explanation: "7/1支払の1年分のうち、3/31時点で未経過なのは4/1～6/30の3ヶ月分です。",
	},

	// Interest.
	{
		ID:   "numeric/accrued-loan-interest",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("借入金%s円（年利率3%%）について、決算日（3/31）時点で6ヶ月分の利息が未払いとなっている。未払利息はいくらか。", Yen(mil(a, 3600)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 54) },
		Explanation: "利息計算：元金 × 年利率 × 期間。未払利息 = 借入金 × 3% × 6/12。",
	},
	{
		ID:   "numeric/accrued-deposit-interest",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("定期預金%s円（預入期間1年、年利率2%%）を9月1日に預け入れた。決算日3月31日時点での未収利息はいくらか。", Yen(mil(a, 2400)))
		},
		Numeric:     func(a int64) int64 { return mil(a, 28) },
		Explanation: "9月1日～翌年3月31日 = 7ヶ月。利息計算：定期預金 × 2% × 7/12。",
	},

	// Ratios.
	{
		ID:   "numeric/current-ratio",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("次の資料から流動比率（%%）を計算せよ。流動資産%s円、流動負債%s円。（小数点以下切り捨て）", Yen(a*120), Yen(a*80))
		},
		Numeric:     func(int64) int64 { return 120 * 100 / 80 },
		Explanation: "流動比率 = (流動資産 ÷ 流動負債) × 100。企業の短期的な支払能力を示す指標です。",
	},
	{
		ID:   "numeric/equity-ratio",
		Kind: KindNumeric,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("次の資料から自己資本比率（%%）を計算せよ。総資産%s円、純資産%s円。（小数点以下切り捨て）", Yen(a*200), Yen(a*80))
		},
		Numeric:     func(int64) int64 { return 80 * 100 / 200 },
		Explanation: "自己資本比率 = (純資産 ÷ 総資産) × 100。企業の財務の安全性を示す指標です。",
	},
}
