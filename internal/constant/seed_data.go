// Package constant holds the bootstrap exemplar data: the initial auditor
// roles, document types and rule keyword mappings extracted from the
// procurement audit checklist.
package constant

import "compliance-audit-be/internal/service"

var SeedRoles = []service.RoleSeed{
	{
		RoleName:         "商务管理员",
		Responsibilities: "负责采购招标、比选、谈判等商务活动的合规性审核，确保采购流程符合法律法规要求",
	},
	{
		RoleName:         "厂领导",
		Responsibilities: "负责重大采购项目的最终审批，把控采购决策的合规性和合理性",
	},
}

var SeedDocumentTypes = []service.DocumentTypeSeed{
	{
		TypeName:    "采购招标/比选/谈判/评审结论建议",
		Description: "采购活动中的招标、比选、谈判等环节的评审结论和建议文档",
	},
}

// SeedRuleMappings wires each role/document-type pair to clauses located by
// exemplar substrings. The seeder searches by the first 20 runes of each
// keyword and links only the first matching clause.
var SeedRuleMappings = []service.RuleMapping{
	{
		Role:         "商务管理员",
		DocumentType: "采购招标/比选/谈判/评审结论建议",
		ClauseKeywords: []string{
			"采购人不得将应当以公开招标方式采购的货物或者服务化整为零",
			"具有特殊性，只能从有限范围的供应商处采购的",
			"招标后没有供应商投标或者没有合格标的",
			"技术复杂或者性质特殊，不能确定详细规格",
			"采用竞争性谈判方式采购的",
		},
	},
	{
		Role:         "厂领导",
		DocumentType: "采购招标/比选/谈判/评审结论建议",
		ClauseKeywords: []string{
			"在招标采购中，出现下列情形之一的，应予废标",
			"符合专业条件的供应商或者对招标文件作实质响应的供应商不足三家",
			"废标后，采购人应当将废标理由通知所有投标人",
			"政府采购合同的双方当事人不得擅自变更、中止或者终止合同",
		},
	},
}
