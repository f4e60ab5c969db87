package config

// TypePrefix is the namespace prefix shared by every Vulkan type name.
const TypePrefix = "Vk"

// Vulkan is the generation table for the Vulkan headers. Entries must be
// added here when the upstream headers introduce a new enumeration, otherwise
// the type is reported as unmapped and skipped.
var Vulkan = []EnumConfig{
	// Enumerations.
	{Name: "VkFormat", Prefix: "VK_FORMAT_"},
	{Name: "VkImageLayout", Prefix: "VK_IMAGE_LAYOUT_"},
	{Name: "VkObjectType", Prefix: "VK_OBJECT_TYPE_"},
	{Name: "VkImageTiling", Prefix: "VK_IMAGE_TILING_"},
	{Name: "VkImageType", Prefix: "VK_IMAGE_TYPE_"},
	{Name: "VkPhysicalDeviceType", Prefix: "VK_PHYSICAL_DEVICE_TYPE_"},
	{Name: "VkQueryType", Prefix: "VK_QUERY_TYPE_"},
	{Name: "VkSharingMode", Prefix: "VK_SHARING_MODE_"},
	{Name: "VkComponentSwizzle", Prefix: "VK_COMPONENT_SWIZZLE_"},
	{Name: "VkImageViewType", Prefix: "VK_IMAGE_VIEW_TYPE_"},
	{Name: "VkBlendFactor", Prefix: "VK_BLEND_FACTOR_"},
	{Name: "VkBlendOp", Prefix: "VK_BLEND_OP_"},
	{Name: "VkCompareOp", Prefix: "VK_COMPARE_OP_"},
	{Name: "VkDynamicState", Prefix: "VK_DYNAMIC_STATE_"},
	{Name: "VkFrontFace", Prefix: "VK_FRONT_FACE_"},
	{Name: "VkVertexInputRate", Prefix: "VK_VERTEX_INPUT_RATE_"},
	{Name: "VkPrimitiveTopology", Prefix: "VK_PRIMITIVE_TOPOLOGY_"},
	{Name: "VkPolygonMode", Prefix: "VK_POLYGON_MODE_"},
	{Name: "VkStencilOp", Prefix: "VK_STENCIL_OP_"},
	{Name: "VkLogicOp", Prefix: "VK_LOGIC_OP_"},
	{Name: "VkBorderColor", Prefix: "VK_BORDER_COLOR_"},
	{Name: "VkFilter", Prefix: "VK_FILTER_"},
	{Name: "VkColorSpaceKHR", Prefix: "VK_COLOR_SPACE_"},
	{Name: "VkPresentModeKHR", Prefix: "VK_PRESENT_MODE_"},
	{Name: "VkDescriptorType", Prefix: "VK_DESCRIPTOR_TYPE_"},
	{Name: "VkAttachmentLoadOp", Prefix: "VK_ATTACHMENT_LOAD_OP_"},
	{Name: "VkAttachmentStoreOp", Prefix: "VK_ATTACHMENT_STORE_OP_"},
	{Name: "VkPipelineBindPoint", Prefix: "VK_PIPELINE_BIND_POINT_"},
	{Name: "VkCommandBufferLevel", Prefix: "VK_COMMAND_BUFFER_LEVEL_"},
	{Name: "VkSubpassContents", Prefix: "VK_SUBPASS_CONTENTS_"},
	{Name: "VkSemaphoreType", Prefix: "VK_SEMAPHORE_TYPE_"},
	{Name: "VkSubpassMergeStatusEXT", Prefix: "VK_SUBPASS_MERGE_STATUS_"},
	{Name: "VkFragmentShadingRateNV", Prefix: "VK_FRAGMENT_SHADING_RATE_"},
	{Name: "VkValidationCheckEXT", Prefix: "VK_VALIDATION_CHECK_"},
	{Name: "VkBuildMicromapModeEXT", Prefix: "VK_BUILD_MICROMAP_MODE_"},
	{Name: "VkSamplerYcbcrRange", Prefix: "VK_SAMPLER_YCBCR_RANGE_"},
	{Name: "VkDisplayPowerStateEXT", Prefix: "VK_DISPLAY_POWER_STATE_"},
	{Name: "VkLatencyMarkerNV", Prefix: "VK_LATENCY_MARKER_"},
	{Name: "VkRasterizationOrderAMD", Prefix: "VK_RASTERIZATION_ORDER_"},
	{Name: "VkAccelerationStructureMotionInstanceTypeNV", Prefix: "VK_ACCELERATION_STRUCTURE_MOTION_INSTANCE_TYPE_"},
	{Name: "VkShaderInfoTypeAMD", Prefix: "VK_SHADER_INFO_TYPE_"},
	{Name: "VkDisplayEventTypeEXT", Prefix: "VK_DISPLAY_EVENT_TYPE_"},
	{Name: "VkShaderGroupShaderKHR", Prefix: "VK_SHADER_GROUP_SHADER_"},
	{Name: "VkCoverageReductionModeNV", Prefix: "VK_COVERAGE_REDUCTION_MODE_"},
	{Name: "VkPerformanceCounterUnitKHR", Prefix: "VK_PERFORMANCE_COUNTER_UNIT_"},
	{Name: "VkPerformanceCounterStorageKHR", Prefix: "VK_PERFORMANCE_COUNTER_STORAGE_"},
	{Name: "VkQueryResultStatusKHR", Prefix: "VK_QUERY_RESULT_STATUS_"},
	{Name: "VkDeviceEventTypeEXT", Prefix: "VK_DEVICE_EVENT_TYPE_"},
	{Name: "VkDeviceFaultAddressTypeEXT", Prefix: "VK_DEVICE_FAULT_ADDRESS_TYPE_"},
	{Name: "VkOpacityMicromapSpecialIndexEXT", Prefix: "VK_OPACITY_MICROMAP_SPECIAL_INDEX_"},
	{Name: "VkLineRasterizationModeEXT", Prefix: "VK_LINE_RASTERIZATION_MODE_"},
	{Name: "VkDeviceFaultVendorBinaryHeaderVersionEXT", Prefix: "VK_DEVICE_FAULT_VENDOR_BINARY_HEADER_VERSION_"},
	{Name: "VkGeometryTypeKHR", Prefix: "VK_GEOMETRY_TYPE_"},
	{Name: "VkDebugReportObjectTypeEXT", Prefix: "VK_DEBUG_REPORT_OBJECT_TYPE_"},
	{Name: "VkComponentTypeKHR", Prefix: "VK_COMPONENT_TYPE_"},
	{Name: "VkCubicFilterWeightsQCOM", Prefix: "VK_CUBIC_FILTER_WEIGHTS_"},
	{Name: "VkDeviceAddressBindingTypeEXT", Prefix: "VK_DEVICE_ADDRESS_BINDING_TYPE_"},
	{Name: "VkOpacityMicromapFormatEXT", Prefix: "VK_OPACITY_MICROMAP_FORMAT_"},
	{Name: "VkAccelerationStructureMemoryRequirementsTypeNV", Prefix: "VK_ACCELERATION_STRUCTURE_MEMORY_REQUIREMENTS_TYPE_"},
	{Name: "VkSamplerAddressMode", Prefix: "VK_SAMPLER_ADDRESS_MODE_"},
	{Name: "VkSamplerMipmapMode", Prefix: "VK_SAMPLER_MIPMAP_MODE_"},
	{Name: "VkConservativeRasterizationModeEXT", Prefix: "VK_CONSERVATIVE_RASTERIZATION_MODE_"},
	{Name: "VkIndirectCommandsTokenTypeNV", Prefix: "VK_INDIRECT_COMMANDS_TOKEN_TYPE_"},
	{Name: "VkFullScreenExclusiveEXT", Prefix: "VK_FULL_SCREEN_EXCLUSIVE_"},
	{Name: "VkLayeredDriverUnderlyingApiMSFT", Prefix: "VK_LAYERED_DRIVER_UNDERLYING_API_"},
	{Name: "VkOpticalFlowPerformanceLevelNV", Prefix: "VK_OPTICAL_FLOW_PERFORMANCE_LEVEL_"},
	{Name: "VkPerformanceCounterScopeKHR", Prefix: "VK_PERFORMANCE_COUNTER_SCOPE_"},
	{Name: "VkCopyAccelerationStructureModeKHR", Prefix: "VK_COPY_ACCELERATION_STRUCTURE_MODE_"},
	{Name: "VkDriverId", Prefix: "VK_DRIVER_ID_"},
	{Name: "VkPipelineExecutableStatisticFormatKHR", Prefix: "VK_PIPELINE_EXECUTABLE_STATISTIC_FORMAT_"},
	{Name: "VkRayTracingShaderGroupTypeKHR", Prefix: "VK_RAY_TRACING_SHADER_GROUP_TYPE_"},
	{Name: "VkTessellationDomainOrigin", Prefix: "VK_TESSELLATION_DOMAIN_ORIGIN_"},
	{Name: "VkDirectDriverLoadingModeLUNARG", Prefix: "VK_DIRECT_DRIVER_LOADING_MODE_"},
	{Name: "VkChromaLocation", Prefix: "VK_CHROMA_LOCATION_"},
	{Name: "VkIndexType", Prefix: "VK_INDEX_TYPE_"},
	{Name: "VkRayTracingInvocationReorderModeNV", Prefix: "VK_RAY_TRACING_INVOCATION_REORDER_MODE_"},
	{Name: "VkSystemAllocationScope", Prefix: "VK_SYSTEM_ALLOCATION_SCOPE_"},
	{Name: "VkDiscardRectangleModeEXT", Prefix: "VK_DISCARD_RECTANGLE_MODE_"},
	{Name: "VkPerformanceConfigurationTypeINTEL", Prefix: "VK_PERFORMANCE_CONFIGURATION_TYPE_"},
	{Name: "VkPointClippingBehavior", Prefix: "VK_POINT_CLIPPING_BEHAVIOR_"},
	{Name: "VkShaderFloatControlsIndependence", Prefix: "VK_SHADER_FLOAT_CONTROLS_INDEPENDENCE_"},
	{Name: "VkOpticalFlowSessionBindingPointNV", Prefix: "VK_OPTICAL_FLOW_SESSION_BINDING_POINT_"},
	{Name: "VkAccelerationStructureCompatibilityKHR", Prefix: "VK_ACCELERATION_STRUCTURE_COMPATIBILITY_"},
	{Name: "VkLayerSettingTypeEXT", Prefix: "VK_LAYER_SETTING_TYPE_"},
	{Name: "VkPerformanceParameterTypeINTEL", Prefix: "VK_PERFORMANCE_PARAMETER_TYPE_"},
	{Name: "VkFragmentShadingRateTypeNV", Prefix: "VK_FRAGMENT_SHADING_RATE_TYPE_"},
	{Name: "VkViewportCoordinateSwizzleNV", Prefix: "VK_VIEWPORT_COORDINATE_SWIZZLE_"},
	{Name: "VkOutOfBandQueueTypeNV", Prefix: "VK_OUT_OF_BAND_QUEUE_TYPE_"},
	{Name: "VkTimeDomainKHR", Prefix: "VK_TIME_DOMAIN_"},
	{Name: "VkVideoEncodeTuningModeKHR", Prefix: "VK_VIDEO_ENCODE_TUNING_MODE_"},
	{Name: "VkFragmentShadingRateCombinerOpKHR", Prefix: "VK_FRAGMENT_SHADING_RATE_COMBINER_OP_"},
	{Name: "VkSamplerYcbcrModelConversion", Prefix: "VK_SAMPLER_YCBCR_MODEL_CONVERSION_"},
	{Name: "VkShaderCodeTypeEXT", Prefix: "VK_SHADER_CODE_TYPE_"},
	{Name: "VkDeviceMemoryReportEventTypeEXT", Prefix: "VK_DEVICE_MEMORY_REPORT_EVENT_TYPE_"},
	{Name: "VkCopyMicromapModeEXT", Prefix: "VK_COPY_MICROMAP_MODE_"},
	{Name: "VkCoarseSampleOrderTypeNV", Prefix: "VK_COARSE_SAMPLE_ORDER_TYPE_"},
	{Name: "VkMicromapTypeEXT", Prefix: "VK_MICROMAP_TYPE_"},
	{Name: "VkPipelineRobustnessImageBehaviorEXT", Prefix: "VK_PIPELINE_ROBUSTNESS_IMAGE_BEHAVIOR_"},
	{Name: "VkAccelerationStructureBuildTypeKHR", Prefix: "VK_ACCELERATION_STRUCTURE_BUILD_TYPE_"},
	{Name: "VkScopeKHR", Prefix: "VK_SCOPE_"},
	{Name: "VkPerformanceOverrideTypeINTEL", Prefix: "VK_PERFORMANCE_OVERRIDE_TYPE_"},
	{Name: "VkBlockMatchWindowCompareModeQCOM", Prefix: "VK_BLOCK_MATCH_WINDOW_COMPARE_MODE_"},
	{Name: "VkQueueGlobalPriorityKHR", Prefix: "VK_QUEUE_GLOBAL_PRIORITY_"},
	{Name: "VkValidationFeatureEnableEXT", Prefix: "VK_VALIDATION_FEATURE_ENABLE_"},
	{Name: "VkMemoryOverallocationBehaviorAMD", Prefix: "VK_MEMORY_OVERALLOCATION_BEHAVIOR_"},
	{Name: "VkVendorId", Prefix: "VK_VENDOR_ID_"},
	{Name: "VkInternalAllocationType", Prefix: "VK_INTERNAL_ALLOCATION_TYPE_"},
	{Name: "VkBuildAccelerationStructureModeKHR", Prefix: "VK_BUILD_ACCELERATION_STRUCTURE_MODE_"},
	{Name: "VkValidationCacheHeaderVersionEXT", Prefix: "VK_VALIDATION_CACHE_HEADER_VERSION_"},
	{Name: "VkCoverageModulationModeNV", Prefix: "VK_COVERAGE_MODULATION_MODE_"},
	{Name: "VkProvokingVertexModeEXT", Prefix: "VK_PROVOKING_VERTEX_MODE_"},
	{Name: "VkDepthBiasRepresentationEXT", Prefix: "VK_DEPTH_BIAS_REPRESENTATION_"},
	{Name: "VkQueryPoolSamplingModeINTEL", Prefix: "VK_QUERY_POOL_SAMPLING_MODE_"},
	{Name: "VkPipelineCacheHeaderVersion", Prefix: "VK_PIPELINE_CACHE_HEADER_VERSION_"},
	{Name: "VkPerformanceValueTypeINTEL", Prefix: "VK_PERFORMANCE_VALUE_TYPE_"},
	{Name: "VkShadingRatePaletteEntryNV", Prefix: "VK_SHADING_RATE_PALETTE_ENTRY_"},
	{Name: "VkDescriptorUpdateTemplateType", Prefix: "VK_DESCRIPTOR_UPDATE_TEMPLATE_TYPE_"},
	{Name: "VkAccelerationStructureTypeKHR", Prefix: "VK_ACCELERATION_STRUCTURE_TYPE_"},
	{Name: "VkBlendOverlapEXT", Prefix: "VK_BLEND_OVERLAP_"},
	{Name: "VkPipelineRobustnessBufferBehaviorEXT", Prefix: "VK_PIPELINE_ROBUSTNESS_BUFFER_BEHAVIOR_"},
	{Name: "VkSamplerReductionMode", Prefix: "VK_SAMPLER_REDUCTION_MODE_"},

	// Bitmasks.
	{Name: "VkImageUsageFlagBits", Prefix: "VK_IMAGE_USAGE_", IsFlags: true},
	{Name: "VkSurfaceTransformFlagBitsKHR", Prefix: "VK_SURFACE_TRANSFORM_", IsFlags: true},
	{Name: "VkDeviceQueueCreateFlagBits", Prefix: "VK_DEVICE_QUEUE_CREATE_", IsFlags: true},
	{Name: "VkMemoryPropertyFlagBits", Prefix: "VK_MEMORY_PROPERTY_", IsFlags: true},
	{Name: "VkMemoryHeapFlagBits", Prefix: "VK_MEMORY_HEAP_", IsFlags: true},
	{Name: "VkMemoryAllocateFlagBits", Prefix: "VK_MEMORY_ALLOCATE_", IsFlags: true},
	{Name: "VkPipelineStageFlagBits", Prefix: "VK_PIPELINE_STAGE_", IsFlags: true},
	{Name: "VkAccessFlagBits", Prefix: "VK_ACCESS_", IsFlags: true},
	{Name: "VkDependencyFlagBits", Prefix: "VK_DEPENDENCY_", IsFlags: true},
	{Name: "VkCommandPoolCreateFlagBits", Prefix: "VK_COMMAND_POOL_CREATE_", IsFlags: true},
	{Name: "VkCommandPoolResetFlagBits", Prefix: "VK_COMMAND_POOL_RESET_", IsFlags: true},
	{Name: "VkCommandBufferUsageFlagBits", Prefix: "VK_COMMAND_BUFFER_USAGE_", IsFlags: true},
	{Name: "VkCommandBufferResetFlagBits", Prefix: "VK_COMMAND_BUFFER_RESET_", IsFlags: true},
	{Name: "VkDescriptorPoolCreateFlagBits", Prefix: "VK_DESCRIPTOR_POOL_CREATE_", IsFlags: true},
	{Name: "VkDescriptorPoolResetFlagBits", Prefix: "VK_DESCRIPTOR_POOL_RESET_", IsFlags: true},
	{Name: "VkDescriptorSetLayoutCreateFlagBits", Prefix: "VK_DESCRIPTOR_SET_LAYOUT_CREATE_", IsFlags: true},
	{Name: "VkAttachmentDescriptionFlagBits", Prefix: "VK_ATTACHMENT_DESCRIPTION_", IsFlags: true},
	{Name: "VkPipelineShaderStageCreateFlagBits", Prefix: "VK_PIPELINE_SHADER_STAGE_CREATE_", IsFlags: true},
	{Name: "VkPipelineInputAssemblyStateCreateFlagBits", Prefix: "VK_PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_", IsFlags: true},
	{Name: "VkPipelineViewportStateCreateFlagBits", Prefix: "VK_PIPELINE_VIEWPORT_STATE_CREATE_", IsFlags: true},
	{Name: "VkPipelineMultisampleStateCreateFlagBits", Prefix: "VK_PIPELINE_MULTISAMPLE_STATE_CREATE_", IsFlags: true},
	{Name: "VkPipelineDepthStencilStateCreateFlagBits", Prefix: "VK_PIPELINE_DEPTH_STENCIL_STATE_CREATE_", IsFlags: true},
	{Name: "VkPipelineColorBlendStateCreateFlagBits", Prefix: "VK_PIPELINE_COLOR_BLEND_STATE_CREATE_", IsFlags: true},
	{Name: "VkPipelineDynamicStateCreateFlagBits", Prefix: "VK_PIPELINE_DYNAMIC_STATE_CREATE_", IsFlags: true},
	{Name: "VkPipelineLayoutCreateFlagBits", Prefix: "VK_PIPELINE_LAYOUT_CREATE_", IsFlags: true},
	{Name: "VkSamplerCreateFlagBits", Prefix: "VK_SAMPLER_CREATE_", IsFlags: true},
	{Name: "VkFramebufferCreateFlagBits", Prefix: "VK_FRAMEBUFFER_CREATE_", IsFlags: true},
	{Name: "VkRenderPassCreateFlagBits", Prefix: "VK_RENDER_PASS_CREATE_", IsFlags: true},
	{Name: "VkInstanceCreateFlagBits", Prefix: "VK_INSTANCE_CREATE_", IsFlags: true},
	{Name: "VkDeviceCreateFlagBits", Prefix: "VK_DEVICE_CREATE_", IsFlags: true},
	{Name: "VkQueryControlFlagBits", Prefix: "VK_QUERY_CONTROL_", IsFlags: true},
	{Name: "VkQueryResultFlagBits", Prefix: "VK_QUERY_RESULT_", IsFlags: true},
	{Name: "VkBufferCreateFlagBits", Prefix: "VK_BUFFER_CREATE_", IsFlags: true},
	{Name: "VkBufferUsageFlagBits", Prefix: "VK_BUFFER_USAGE_", IsFlags: true},
	{Name: "VkBufferViewCreateFlagBits", Prefix: "VK_BUFFER_VIEW_CREATE_", IsFlags: true},
	{Name: "VkImageCreateFlagBits", Prefix: "VK_IMAGE_CREATE_", IsFlags: true},
	{Name: "VkImageViewCreateFlagBits", Prefix: "VK_IMAGE_VIEW_CREATE_", IsFlags: true},
	{Name: "VkShaderModuleCreateFlagBits", Prefix: "VK_SHADER_MODULE_CREATE_", IsFlags: true},
	{Name: "VkPipelineCacheCreateFlagBits", Prefix: "VK_PIPELINE_CACHE_CREATE_", IsFlags: true},
	{Name: "VkPipelineCreateFlagBits", Prefix: "VK_PIPELINE_CREATE_", IsFlags: true},
	{Name: "VkPipelineVertexInputStateCreateFlagBits", Prefix: "VK_PIPELINE_VERTEX_INPUT_STATE_CREATE_", IsFlags: true},
	{Name: "VkPipelineTessellationStateCreateFlagBits", Prefix: "VK_PIPELINE_TESSELLATION_STATE_CREATE_", IsFlags: true},
	{Name: "VkPipelineRasterizationStateCreateFlagBits", Prefix: "VK_PIPELINE_RASTERIZATION_STATE_CREATE_", IsFlags: true},
	{Name: "VkSparseMemoryBindFlagBits", Prefix: "VK_SPARSE_MEMORY_BIND_", IsFlags: true},
	{Name: "VkExternalSemaphoreHandleTypeFlagBits", Prefix: "VK_EXTERNAL_SEMAPHORE_HANDLE_TYPE_", IsFlags: true},
	{Name: "VkQueryPipelineStatisticFlagBits", Prefix: "VK_QUERY_PIPELINE_STATISTIC_", IsFlags: true},
	{Name: "VkExternalSemaphoreFeatureFlagBits", Prefix: "VK_EXTERNAL_SEMAPHORE_FEATURE_", IsFlags: true},
	{Name: "VkDescriptorBindingFlagBits", Prefix: "VK_DESCRIPTOR_BINDING_", IsFlags: true},
	{Name: "VkVideoDecodeCapabilityFlagBitsKHR", Prefix: "VK_VIDEO_DECODE_CAPABILITY_", IsFlags: true},
	{Name: "VkValidationFeatureDisableEXT", Prefix: "VK_VALIDATION_FEATURE_DISABLE_"},
	{Name: "VkExternalFenceHandleTypeFlagBits", Prefix: "VK_EXTERNAL_FENCE_HANDLE_TYPE_", IsFlags: true},
	{Name: "VkShaderCorePropertiesFlagBitsAMD", Prefix: "VK_SHADER_CORE_PROPERTIES_", IsFlags: true},
	{Name: "VkRenderingFlagBits", Prefix: "VK_RENDERING_", IsFlags: true},
	{Name: "VkDeviceDiagnosticsConfigFlagBitsNV", Prefix: "VK_DEVICE_DIAGNOSTICS_CONFIG_", IsFlags: true},
	{Name: "VkGeometryFlagBitsKHR", Prefix: "VK_GEOMETRY_", IsFlags: true},
	{Name: "VkOpticalFlowGridSizeFlagBitsNV", Prefix: "VK_OPTICAL_FLOW_GRID_SIZE_", IsFlags: true},
	{Name: "VkPeerMemoryFeatureFlagBits", Prefix: "VK_PEER_MEMORY_FEATURE_", IsFlags: true},
	{Name: "VkVideoEncodeH265RateControlFlagBitsKHR", Prefix: "VK_VIDEO_ENCODE_H265_RATE_CONTROL_", IsFlags: true},
	{Name: "VkDisplayPlaneAlphaFlagBitsKHR", Prefix: "VK_DISPLAY_PLANE_ALPHA_", IsFlags: true},
	{Name: "VkVideoEncodeH265TransformBlockSizeFlagBitsKHR", Prefix: "VK_VIDEO_ENCODE_H265_TRANSFORM_BLOCK_SIZE_", IsFlags: true},
	{Name: "VkVideoEncodeH265CapabilityFlagBitsKHR", Prefix: "VK_VIDEO_ENCODE_H265_CAPABILITY_", IsFlags: true},
	{Name: "VkExternalMemoryFeatureFlagBitsNV", Prefix: "VK_EXTERNAL_MEMORY_FEATURE_", IsFlags: true},
	{Name: "VkVideoEncodeFeedbackFlagBitsKHR", Prefix: "VK_VIDEO_ENCODE_FEEDBACK_", IsFlags: true},
	{Name: "VkPresentScalingFlagBitsEXT", Prefix: "VK_PRESENT_SCALING_", IsFlags: true},
	{Name: "VkSampleCountFlagBits", Prefix: "VK_SAMPLE_COUNT_", IsFlags: true},
	{Name: "VkShaderStageFlagBits", Prefix: "VK_SHADER_STAGE_", IsFlags: true},
	{Name: "VkOpticalFlowUsageFlagBitsNV", Prefix: "VK_OPTICAL_FLOW_USAGE_", IsFlags: true},
	{Name: "VkFenceImportFlagBits", Prefix: "VK_FENCE_IMPORT_", IsFlags: true},
	{Name: "VkVideoSessionCreateFlagBitsKHR", Prefix: "VK_VIDEO_SESSION_CREATE_", IsFlags: true},
	{Name: "VkImageCompressionFixedRateFlagBitsEXT", Prefix: "VK_IMAGE_COMPRESSION_FIXED_RATE_", IsFlags: true},
	{Name: "VkFenceCreateFlagBits", Prefix: "VK_FENCE_CREATE_", IsFlags: true},
	{Name: "VkGeometryInstanceFlagBitsKHR", Prefix: "VK_GEOMETRY_INSTANCE_", IsFlags: true},
	{Name: "VkSubmitFlagBits", Prefix: "VK_SUBMIT_", IsFlags: true},
	{Name: "VkVideoDecodeH264PictureLayoutFlagBitsKHR", Prefix: "VK_VIDEO_DECODE_H264_PICTURE_LAYOUT_", IsFlags: true},
	{Name: "VkDebugUtilsMessageTypeFlagBitsEXT", Prefix: "VK_DEBUG_UTILS_MESSAGE_TYPE_", IsFlags: true},
	{Name: "VkStencilFaceFlagBits", Prefix: "VK_STENCIL_FACE_", IsFlags: true},
	{Name: "VkOpticalFlowExecuteFlagBitsNV", Prefix: "VK_OPTICAL_FLOW_EXECUTE_", IsFlags: true},
	{Name: "VkSurfaceCounterFlagBitsEXT", Prefix: "VK_SURFACE_COUNTER_", IsFlags: true},
	{Name: "VkVideoCodecOperationFlagBitsKHR", Prefix: "VK_VIDEO_CODEC_OPERATION_", IsFlags: true},
	{Name: "VkDebugUtilsMessageSeverityFlagBitsEXT", Prefix: "VK_DEBUG_UTILS_MESSAGE_SEVERITY_", IsFlags: true},
	{Name: "VkSemaphoreImportFlagBits", Prefix: "VK_SEMAPHORE_IMPORT_", IsFlags: true},
	{Name: "VkVideoCodingControlFlagBitsKHR", Prefix: "VK_VIDEO_CODING_CONTROL_", IsFlags: true},
	{Name: "VkExternalMemoryHandleTypeFlagBitsNV", Prefix: "VK_EXTERNAL_MEMORY_HANDLE_TYPE_", IsFlags: true},
	{Name: "VkPipelineCreationFeedbackFlagBits", Prefix: "VK_PIPELINE_CREATION_FEEDBACK_", IsFlags: true},
	{Name: "VkVideoEncodeRateControlModeFlagBitsKHR", Prefix: "VK_VIDEO_ENCODE_RATE_CONTROL_MODE_", IsFlags: true},
	{Name: "VkVideoEncodeCapabilityFlagBitsKHR", Prefix: "VK_VIDEO_ENCODE_CAPABILITY_", IsFlags: true},
	{Name: "VkVideoComponentBitDepthFlagBitsKHR", Prefix: "VK_VIDEO_COMPONENT_BIT_DEPTH_", IsFlags: true},
	{Name: "VkVideoDecodeUsageFlagBitsKHR", Prefix: "VK_VIDEO_DECODE_USAGE_", IsFlags: true},
	{Name: "VkResolveModeFlagBits", Prefix: "VK_RESOLVE_MODE_", IsFlags: true},
	{Name: "VkPresentGravityFlagBitsEXT", Prefix: "VK_PRESENT_GRAVITY_", IsFlags: true},
	{Name: "VkOpticalFlowSessionCreateFlagBitsNV", Prefix: "VK_OPTICAL_FLOW_SESSION_CREATE_", IsFlags: true},
	{Name: "VkVideoChromaSubsamplingFlagBitsKHR", Prefix: "VK_VIDEO_CHROMA_SUBSAMPLING_", IsFlags: true},
	{Name: "VkExternalMemoryFeatureFlagBits", Prefix: "VK_EXTERNAL_MEMORY_FEATURE_", IsFlags: true},
	{Name: "VkBuildMicromapFlagBitsEXT", Prefix: "VK_BUILD_MICROMAP_", IsFlags: true},
	{Name: "VkVideoEncodeUsageFlagBitsKHR", Prefix: "VK_VIDEO_ENCODE_USAGE_", IsFlags: true},
	{Name: "VkFrameBoundaryFlagBitsEXT", Prefix: "VK_FRAME_BOUNDARY_", IsFlags: true},
	{Name: "VkDeviceAddressBindingFlagBitsEXT", Prefix: "VK_DEVICE_ADDRESS_BINDING_", IsFlags: true},
	{Name: "VkQueueFlagBits", Prefix: "VK_QUEUE_", IsFlags: true},
	{Name: "VkIndirectStateFlagBitsNV", Prefix: "VK_INDIRECT_STATE_", IsFlags: true},
	{Name: "VkGraphicsPipelineLibraryFlagBitsEXT", Prefix: "VK_GRAPHICS_PIPELINE_LIBRARY_", IsFlags: true},
	{Name: "VkCullModeFlagBits", Prefix: "VK_CULL_MODE_", IsFlags: true},
	{Name: "VkDebugReportFlagBitsEXT", Prefix: "VK_DEBUG_REPORT_", IsFlags: true},
	{Name: "VkIndirectCommandsLayoutUsageFlagBitsNV", Prefix: "VK_INDIRECT_COMMANDS_LAYOUT_USAGE_", IsFlags: true},
	{Name: "VkVideoCapabilityFlagBitsKHR", Prefix: "VK_VIDEO_CAPABILITY_", IsFlags: true},
	{Name: "VkAccelerationStructureCreateFlagBitsKHR", Prefix: "VK_ACCELERATION_STRUCTURE_CREATE_", IsFlags: true},
	{Name: "VkPerformanceCounterDescriptionFlagBitsKHR", Prefix: "VK_PERFORMANCE_COUNTER_DESCRIPTION_", IsFlags: true},
	{Name: "VkConditionalRenderingFlagBitsEXT", Prefix: "VK_CONDITIONAL_RENDERING_", IsFlags: true},
	{Name: "VkVideoEncodeH264CapabilityFlagBitsKHR", Prefix: "VK_VIDEO_ENCODE_H264_CAPABILITY_", IsFlags: true},
	{Name: "VkExternalMemoryHandleTypeFlagBits", Prefix: "VK_EXTERNAL_MEMORY_HANDLE_TYPE_", IsFlags: true},
	{Name: "VkCompositeAlphaFlagBitsKHR", Prefix: "VK_COMPOSITE_ALPHA_", IsFlags: true},
	{Name: "VkToolPurposeFlagBits", Prefix: "VK_TOOL_PURPOSE_", IsFlags: true},
	{Name: "VkAcquireProfilingLockFlagBitsKHR", Prefix: "VK_ACQUIRE_PROFILING_LOCK_", IsFlags: true},
	{Name: "VkImageAspectFlagBits", Prefix: "VK_IMAGE_ASPECT_", IsFlags: true},
	{Name: "VkVideoEncodeH265StdFlagBitsKHR", Prefix: "VK_VIDEO_ENCODE_H265_STD_", IsFlags: true},
	{Name: "VkVideoEncodeH265CtbSizeFlagBitsKHR", Prefix: "VK_VIDEO_ENCODE_H265_CTB_SIZE_", IsFlags: true},
	{Name: "VkExternalFenceFeatureFlagBits", Prefix: "VK_EXTERNAL_FENCE_FEATURE_", IsFlags: true},
	{Name: "VkVideoEncodeH264StdFlagBitsKHR", Prefix: "VK_VIDEO_ENCODE_H264_STD_", IsFlags: true},
	{Name: "VkSemaphoreWaitFlagBits", Prefix: "VK_SEMAPHORE_WAIT_", IsFlags: true},
	{Name: "VkPipelineCompilerControlFlagBitsAMD", Prefix: "VK_PIPELINE_COMPILER_CONTROL_", IsFlags: true},
	{Name: "VkShaderCreateFlagBitsEXT", Prefix: "VK_SHADER_CREATE_", IsFlags: true},
	{Name: "VkSubgroupFeatureFlagBits", Prefix: "VK_SUBGROUP_FEATURE_", IsFlags: true},
	{Name: "VkColorComponentFlagBits", Prefix: "VK_COLOR_COMPONENT_", IsFlags: true},
	{Name: "VkSparseImageFormatFlagBits", Prefix: "VK_SPARSE_IMAGE_FORMAT_", IsFlags: true},
	{Name: "VkImageCompressionFlagBitsEXT", Prefix: "VK_IMAGE_COMPRESSION_", IsFlags: true},
	{Name: "VkBuildAccelerationStructureFlagBitsKHR", Prefix: "VK_BUILD_ACCELERATION_STRUCTURE_", IsFlags: true},
	{Name: "VkSwapchainCreateFlagBitsKHR", Prefix: "VK_SWAPCHAIN_CREATE_", IsFlags: true},
	{Name: "VkVideoEncodeH264RateControlFlagBitsKHR", Prefix: "VK_VIDEO_ENCODE_H264_RATE_CONTROL_", IsFlags: true},
	{Name: "VkSubpassDescriptionFlagBits", Prefix: "VK_SUBPASS_DESCRIPTION_", IsFlags: true},
	{Name: "VkVideoEncodeContentFlagBitsKHR", Prefix: "VK_VIDEO_ENCODE_CONTENT_", IsFlags: true},
	{Name: "VkEventCreateFlagBits", Prefix: "VK_EVENT_CREATE_", IsFlags: true},
	{Name: "VkHostImageCopyFlagBitsEXT", Prefix: "VK_HOST_IMAGE_COPY_", IsFlags: true},
	{Name: "VkDeviceGroupPresentModeFlagBitsKHR", Prefix: "VK_DEVICE_GROUP_PRESENT_MODE_", IsFlags: true},
	{Name: "VkFormatFeatureFlagBits", Prefix: "VK_FORMAT_FEATURE_", IsFlags: true},
	{Name: "VkMicromapCreateFlagBitsEXT", Prefix: "VK_MICROMAP_CREATE_", IsFlags: true},
}
